package game

// Evaluate scores guess against target using the standard two-pass
// Wordle algorithm.
//
// Pass 1:
//   - Mark exact matches as Correct.
//   - Count remaining (non-correct) target letters.
//
// Pass 2:
//   - Left to right over unmarked guess letters: if the count for that
//     letter is positive, mark Present and decrement; otherwise Absent.
//
// Letters outside A–Z (the zero Word) score Absent unless they are an
// exact match. Every position of the result is scored. Evaluate keeps no
// state and is safe for concurrent use.
func Evaluate(guess, target Word) ScoredWord {
	res := unscored(guess)

	// Remaining target letters, A–Z.
	var counts [26]int

	for i := 0; i < Size; i++ {
		if guess.letters[i] == target.letters[i] {
			res[i].Feedback = Correct
		} else if j := idx(target.letters[i]); j >= 0 {
			counts[j]++
		}
	}

	for i := 0; i < Size; i++ {
		if res[i].Scored() {
			continue
		}
		j := idx(guess.letters[i])
		if j >= 0 && counts[j] > 0 {
			res[i].Feedback = Present
			counts[j]--
		} else {
			res[i].Feedback = Absent
		}
	}
	return res
}

// idx maps an uppercase letter to 0..25, or -1 for anything else
// (e.g. the zero Word).
func idx(l Letter) int {
	if l < 'A' || l > 'Z' {
		return -1
	}
	return int(l - 'A')
}
