package score

// letterFrequency is the relative frequency of each letter in English text.
var letterFrequency = map[byte]float64{
	'a': 0.08167,
	'b': 0.01492,
	'c': 0.02782,
	'd': 0.04253,
	'e': 0.1270,
	'f': 0.02228,
	'g': 0.02015,
	'h': 0.06094,
	'i': 0.06966,
	'j': 0.00153,
	'k': 0.00772,
	'l': 0.04025,
	'm': 0.02406,
	'n': 0.06749,
	'o': 0.07507,
	'p': 0.01929,
	'q': 0.00095,
	'r': 0.05987,
	's': 0.06327,
	't': 0.09056,
	'u': 0.02758,
	'v': 0.00978,
	'w': 0.02360,
	'x': 0.00150,
	'y': 0.01974,
	'z': 0.00074,
}

// expected maps every byte value to the English frequency of its ASCII
// lowercase form. Built once; read-only afterwards.
var expected [256]float64

func init() {
	for c := 0; c < 256; c++ {
		expected[c] = letterFrequency[toLower(byte(c))]
	}
}

// Expected returns the English letter frequency for c, folding ASCII case.
// Non-letters return 0.
func Expected(c byte) float64 { return expected[c] }

func toLower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
