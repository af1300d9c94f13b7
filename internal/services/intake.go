package services

import (
	"encoding/json"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/sustainhire/internship-intake/internal/models"
)

// ResumeUpload is the optional file part of a submission.
type ResumeUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// FieldsFromForm flattens url.Values (first value wins) for NewCandidate.
func FieldsFromForm(v url.Values) map[string]any {
	out := make(map[string]any, len(v))
	for k, vals := range v {
		if len(vals) > 0 {
			out[k] = vals[0]
		}
	}
	return out
}

// NewCandidate extracts the known fields from a decoded form or JSON body and
// applies the coercion rules. Unknown fields are ignored and absent text
// fields become "".
func NewCandidate(fields map[string]any) *models.Candidate {
	str := func(key string) string { return stringValue(fields[key]) }

	return &models.Candidate{
		FullName: str("fullName"),
		Email:    str("email"),
		Phone:    str("phone"),
		DOB:      str("dob"),
		Location: str("location"),

		College:        str("college"),
		Degree:         str("degree"),
		Major:          str("major"),
		Year:           str("year"),
		GraduationYear: str("graduationYear"),

		Role:           str("role"),
		StartMonthYear: str("startMonthYear"),
		Duration:       str("duration"),
		LocationPref:   str("locationPref"),

		Skills:          str("skills"),
		Experience:      str("experience"),
		WhyInternship:   str("whyInternship"),
		CareerGoals:     str("careerGoals"),
		AreasOfInterest: str("areasOfInterest"),
		LinkedIn:        str("linkedin"),
		Portfolio:       str("portfolio"),
		Comments:        str("comments"),

		Declaration: CoerceDeclaration(fields["declaration"]),
	}
}

// CoerceDeclaration is true for "true", "on" (checkbox) and boolean true only.
// The string must match exactly; whitespace is not trimmed.
func CoerceDeclaration(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t == "true" || t == "on"
	case []string:
		if len(t) == 0 {
			return false
		}
		return CoerceDeclaration(t[0])
	default:
		return false
	}
}

func stringValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case []string:
		if len(t) == 0 {
			return ""
		}
		return strings.TrimSpace(t[0])
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		// objects and arrays are not valid field values
		return ""
	}
}
