package lang

// base55 maps characters to their base-55 numbers. Lower case letters count
// up from 1, upper case down from -1, with a few oddities kept for
// compatibility: U is -210 and the three punctuation marks start at 53.
var base55 = map[rune]int32{
	' ': 0,
	'/': 53, '\\': 54, '.': 55,
	'U': -210,
}

var base55Reverse = map[int32]rune{}

func init() {
	for r := 'a'; r <= 'z'; r++ {
		base55[r] = int32(r-'a') + 1
	}
	for r := 'A'; r <= 'Z'; r++ {
		if r == 'U' {
			continue
		}
		base55[r] = -(int32(r-'A') + 1)
	}
	for r, n := range base55 {
		base55Reverse[n] = r
	}
}

// CharToNum returns the base-55 number of r. Characters outside the table
// map to 0.
func CharToNum(r rune) int32 {
	return base55[r]
}

// NumToChar returns the character for a base-55 number. Numbers outside the
// table map to a space.
func NumToChar(n int32) rune {
	if r, ok := base55Reverse[n]; ok {
		return r
	}
	return ' '
}
