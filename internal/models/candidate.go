package models

// Candidate is a submission after field extraction and coercion but before
// validation. DOB and GraduationYear stay raw so that bad input surfaces as a
// validation failure rather than a parse failure.
type Candidate struct {
	FullName string `form:"fullName" validate:"required"`
	Email    string `form:"email" validate:"required,email"`
	Phone    string `form:"phone" validate:"required"`
	DOB      string `form:"dob" validate:"required"`
	Location string `form:"location" validate:"required"`

	College        string `form:"college" validate:"required"`
	Degree         string `form:"degree" validate:"required"`
	Major          string `form:"major" validate:"required"`
	Year           string `form:"year" validate:"required"`
	GraduationYear string `form:"graduationYear" validate:"required"`

	Role           string `form:"role" validate:"required"`
	StartMonthYear string `form:"startMonthYear" validate:"required"`
	Duration       string `form:"duration" validate:"required"`
	LocationPref   string `form:"locationPref" validate:"required"`

	Skills          string `form:"skills"`
	Experience      string `form:"experience"`
	WhyInternship   string `form:"whyInternship"`
	CareerGoals     string `form:"careerGoals"`
	AreasOfInterest string `form:"areasOfInterest"`
	LinkedIn        string `form:"linkedin"`
	Portfolio       string `form:"portfolio"`
	Comments        string `form:"comments"`

	Declaration bool `form:"declaration"`
}
