package services

// PasswordStrength scores pw from 0 to 4, one point each for length of at
// least 8, an uppercase letter, a digit and a symbol.
func PasswordStrength(pw string) int {
	var upper, digit, symbol bool
	for _, r := range pw {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case r >= 'a' && r <= 'z':
		default:
			symbol = true
		}
	}

	score := 0
	for _, ok := range []bool{len(pw) >= 8, upper, digit, symbol} {
		if ok {
			score++
		}
	}
	return score
}

// StrengthLabel names a PasswordStrength score. Zero has no label.
func StrengthLabel(score int) string {
	switch score {
	case 1:
		return "Weak"
	case 2:
		return "Fair"
	case 3:
		return "Good"
	case 4:
		return "Strong"
	}
	return ""
}

