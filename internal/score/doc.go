// Package score rates how plausible a byte buffer is as English text.
//
// The score is a Bhattacharyya-style coefficient between the buffer's byte
// distribution and the English letter distribution, minus a fixed penalty per
// control character:
//
//	score(b) = Σ sqrt(observed(c) * expected(lower(c))) - penalty * controls(b)
//
// The sum runs over distinct byte values c in b. Bytes that are not ASCII
// letters have an expected frequency of zero. Higher is more English-like; a
// score may be negative. An empty buffer scores 0.
//
// Scores are deterministic down to the last bit: distinct bytes are summed in
// ascending byte order.
package score
