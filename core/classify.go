package core

import "github.com/crawlscore/crawlscore/schema"

// StatusFor maps an overall score to its status bucket.
func StatusFor(score int) schema.Status {
	switch {
	case score >= 90:
		return schema.GoodStatus
	case score >= 50:
		return schema.MediumStatus
	default:
		return schema.BadStatus
	}
}

// GradeFor maps an overall score to its letter grade. The grade and status
// scales are independent enumerations over the same score.
func GradeFor(score int) schema.Grade {
	switch {
	case score >= 90:
		return schema.GradeAPlus
	case score >= 80:
		return schema.GradeA
	case score >= 70:
		return schema.GradeB
	case score >= 60:
		return schema.GradeC
	case score >= 50:
		return schema.GradeD
	default:
		return schema.GradeF
	}
}
