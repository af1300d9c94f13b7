package models

import "time"

// Application is one stored internship application. The same struct is
// written to the Mongo collection and to the postgres table, both named
// "internship".
type Application struct {
	// hex ObjectID on mongo, uuid on postgres
	ID string `bson:"_id,omitempty" gorm:"column:id;type:text;primaryKey" json:"id"`

	FullName string    `bson:"fullName" gorm:"column:full_name;type:text;not null" json:"fullName"`
	Email    string    `bson:"email" gorm:"column:email;type:text;not null;index" json:"email"`
	Phone    string    `bson:"phone" gorm:"column:phone;type:text;not null" json:"phone"`
	DOB      time.Time `bson:"dob" gorm:"column:dob;type:date;not null" json:"dob"`
	Location string    `bson:"location" gorm:"column:location;type:text;not null" json:"location"`

	College        string `bson:"college" gorm:"column:college;type:text;not null" json:"college"`
	Degree         string `bson:"degree" gorm:"column:degree;type:text;not null" json:"degree"`
	Major          string `bson:"major" gorm:"column:major;type:text;not null" json:"major"`
	Year           string `bson:"year" gorm:"column:year;type:text;not null" json:"year"`
	GraduationYear int    `bson:"graduationYear" gorm:"column:graduation_year;type:integer;not null" json:"graduationYear"`

	Role           string `bson:"role" gorm:"column:role;type:text;not null" json:"role"`
	StartMonthYear string `bson:"startMonthYear" gorm:"column:start_month_year;type:text;not null" json:"startMonthYear"`
	Duration       string `bson:"duration" gorm:"column:duration;type:text;not null" json:"duration"`
	LocationPref   string `bson:"locationPref" gorm:"column:location_pref;type:text;not null" json:"locationPref"`

	Skills          string `bson:"skills" gorm:"column:skills;type:text" json:"skills"`
	Experience      string `bson:"experience" gorm:"column:experience;type:text" json:"experience"`
	WhyInternship   string `bson:"whyInternship" gorm:"column:why_internship;type:text" json:"whyInternship"`
	CareerGoals     string `bson:"careerGoals" gorm:"column:career_goals;type:text" json:"careerGoals"`
	AreasOfInterest string `bson:"areasOfInterest" gorm:"column:areas_of_interest;type:text" json:"areasOfInterest"`
	LinkedIn        string `bson:"linkedin" gorm:"column:linkedin;type:text" json:"linkedin"`
	Portfolio       string `bson:"portfolio" gorm:"column:portfolio;type:text" json:"portfolio"`
	Comments        string `bson:"comments" gorm:"column:comments;type:text" json:"comments"`

	Resume     string     `bson:"resume" gorm:"column:resume;type:text" json:"resume"` // "" when no file was attached
	ResumeFile ResumeFile `bson:"resumeFile" gorm:"embedded;embeddedPrefix:resume_" json:"resumeFile"`

	Declaration bool      `bson:"declaration" gorm:"column:declaration;not null" json:"declaration"`
	SubmittedAt time.Time `bson:"submittedAt" gorm:"column:submitted_at;type:timestamptz;not null;index" json:"submittedAt"`
}

func (Application) TableName() string { return "internship" }

// ResumeFile describes the uploaded resume as received.
type ResumeFile struct {
	FileName string `bson:"fileName,omitempty" gorm:"column:file_name;type:text" json:"fileName,omitempty"`
	MimeType string `bson:"mimeType,omitempty" gorm:"column:mime_type;type:text" json:"mimeType,omitempty"`
	Size     int64  `bson:"size,omitempty" gorm:"column:size;type:bigint" json:"size,omitempty"`
}
