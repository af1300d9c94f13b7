package services

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sustainhire/internship-intake/internal/models"
	"github.com/sustainhire/internship-intake/internal/utils"
)

const DefaultMaxResumeBytes int64 = 10 << 20

// detected content types accepted per extension; ole and zip are what
// mimetype falls back to for doc and docx it cannot classify further
var allowedResumeTypes = map[string][]string{
	".pdf":  {"application/pdf"},
	".doc":  {"application/msword", "application/x-ole-storage"},
	".docx": {"application/vnd.openxmlformats-officedocument.wordprocessingml.document", "application/zip"},
}

var dobLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04",
}

type ValidationRules struct {
	ResumeRequired bool
	MaxResumeBytes int64
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// ValidateCandidate checks required fields and types and converts the
// candidate into an Application. Resume path and SubmittedAt are left for the
// caller. Every failing field is reported, not just the first.
func ValidateCandidate(c *models.Candidate, resume *ResumeUpload, rules ValidationRules) (*models.Application, error) {
	verrs := &utils.ValidationError{}

	if err := validate.Struct(c); err != nil {
		var fes validator.ValidationErrors
		if !errors.As(err, &fes) {
			return nil, err
		}
		for _, fe := range fes {
			switch fe.Tag() {
			case "required":
				verrs.Add(fe.Field(), utils.FieldMissing, fe.Field()+" is required")
			case "email":
				verrs.Add(fe.Field(), utils.FieldInvalidFormat, fe.Field()+" must be a valid email address")
			default:
				verrs.Add(fe.Field(), utils.FieldInvalidFormat, fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag()))
			}
		}
	}

	var gradYear int
	if c.GraduationYear != "" {
		// the postgres column is a 32-bit integer
		n, err := strconv.ParseInt(c.GraduationYear, 10, 32)
		switch {
		case errors.Is(err, strconv.ErrRange):
			verrs.Add("graduationYear", utils.FieldInvalidType, "graduationYear is out of range")
		case err != nil:
			verrs.Add("graduationYear", utils.FieldInvalidType, "graduationYear must be an integer")
		default:
			gradYear = int(n)
		}
	}

	var dob time.Time
	if c.DOB != "" {
		t, ok := parseDate(c.DOB)
		if !ok {
			verrs.Add("dob", utils.FieldInvalidFormat, "dob must be a valid date (YYYY-MM-DD)")
		}
		dob = t
	}

	validateResume(verrs, resume, rules)

	if err := verrs.OrNil(); err != nil {
		return nil, err
	}

	return &models.Application{
		FullName: c.FullName,
		Email:    c.Email,
		Phone:    c.Phone,
		DOB:      dob,
		Location: c.Location,

		College:        c.College,
		Degree:         c.Degree,
		Major:          c.Major,
		Year:           c.Year,
		GraduationYear: gradYear,

		Role:           c.Role,
		StartMonthYear: c.StartMonthYear,
		Duration:       c.Duration,
		LocationPref:   c.LocationPref,

		Skills:          c.Skills,
		Experience:      c.Experience,
		WhyInternship:   c.WhyInternship,
		CareerGoals:     c.CareerGoals,
		AreasOfInterest: c.AreasOfInterest,
		LinkedIn:        c.LinkedIn,
		Portfolio:       c.Portfolio,
		Comments:        c.Comments,

		Declaration: c.Declaration,
	}, nil
}

func validateResume(verrs *utils.ValidationError, r *ResumeUpload, rules ValidationRules) {
	if r == nil {
		if rules.ResumeRequired {
			verrs.Add("resume", utils.FieldMissing, "resume is required")
		}
		return
	}

	ext := strings.ToLower(filepath.Ext(r.FileName))
	types, ok := allowedResumeTypes[ext]
	if !ok {
		verrs.Add("resume", utils.FieldInvalidType, "resume must be a .pdf, .doc or .docx file")
		return
	}
	if !slices.Contains(types, baseMediaType(r.ContentType)) {
		verrs.Add("resume", utils.FieldInvalidType, fmt.Sprintf("resume content does not match %s", ext))
		return
	}

	limit := rules.MaxResumeBytes
	if limit <= 0 {
		limit = DefaultMaxResumeBytes
	}
	switch {
	case r.Size <= 0:
		verrs.Add("resume", utils.FieldInvalidFormat, "resume file is empty")
	case r.Size > limit:
		verrs.Add("resume", utils.FieldTooLarge, fmt.Sprintf("resume exceeds the %d byte limit", limit))
	}
}

func baseMediaType(ct string) string {
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	return strings.ToLower(strings.TrimSpace(ct))
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dobLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			// keep the calendar day as written, whatever the offset
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}
