package pattern

// Feedback computes the two-pass, duplicate-correct feedback Pattern
// for guess against answer (§4.1). It is pure, total, and allocates
// nothing: both the consumed-tracking array and the returned Pattern
// live on the stack.
//
// Pass 1 marks exact matches and consumes the corresponding answer
// position. Pass 2 scans the remaining guess positions against the
// remaining unconsumed answer positions, left to right, marking
// PRESENT the first time a letter is found and ABSENT otherwise. This
// ordering is what makes repeated letters resolve correctly: a guess
// letter can only be credited as PRESENT as many times as it remains
// unconsumed in the answer.
func Feedback(guess, answer Word) Pattern {
	var p Pattern
	var consumed [WordLength]bool

	for i := 0; i < WordLength; i++ {
		if guess[i] == answer[i] {
			p[i] = Exact
			consumed[i] = true
		}
	}

	for i := 0; i < WordLength; i++ {
		if p[i] == Exact {
			continue
		}
		found := false
		for j := 0; j < WordLength; j++ {
			if !consumed[j] && answer[j] == guess[i] {
				consumed[j] = true
				found = true
				break
			}
		}
		if found {
			p[i] = Present
		} else {
			p[i] = Absent
		}
	}

	return p
}

// FeedbackCode is Feedback followed by Code, computed without
// materializing the intermediate Pattern. Implementers are expected to
// skip the tuple per §4.2; this is the hot path used by the entropy
// evaluator's O(|S|) inner loop.
func FeedbackCode(guess, answer Word) int {
	var codeSym [WordLength]Symbol
	var consumed [WordLength]bool

	for i := 0; i < WordLength; i++ {
		if guess[i] == answer[i] {
			codeSym[i] = Exact
			consumed[i] = true
		}
	}

	for i := 0; i < WordLength; i++ {
		if codeSym[i] == Exact {
			continue
		}
		for j := 0; j < WordLength; j++ {
			if !consumed[j] && answer[j] == guess[i] {
				consumed[j] = true
				codeSym[i] = Present
				goto next
			}
		}
		codeSym[i] = Absent
	next:
	}

	code := 0
	mul := 1
	for i := 0; i < WordLength; i++ {
		code += int(codeSym[i]) * mul
		mul *= 3
	}
	return code
}
