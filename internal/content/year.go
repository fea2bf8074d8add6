package content

// Year returns the publication's derived year: the first run of exactly
// four consecutive digits in its free-text date, or "" if none exists.
// A longer digit run does not count ("12345" yields nothing).
func (p Publication) Year() string {
	return DeriveYear(p.Date)
}

// DeriveYear extracts the first run of exactly four consecutive digits
// from s.
func DeriveYear(s string) string {
	runStart := -1
	flush := func(end int) string {
		if runStart >= 0 && end-runStart == 4 {
			return s[runStart:end]
		}
		return ""
	}
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			if runStart < 0 {
				runStart = i
			}
			continue
		}
		if y := flush(i); y != "" {
			return y
		}
		runStart = -1
	}
	return flush(len(s))
}
