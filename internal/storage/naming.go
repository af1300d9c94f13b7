package storage

import (
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const anonymousBucket = "anonymous"

// EmailBucket maps an applicant email to a folder name safe on any filesystem.
func EmailBucket(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return anonymousBucket
	}
	var b strings.Builder
	b.Grow(len(email))
	for _, r := range email {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	out := strings.Trim(b.String(), "_")
	if out == "" {
		return anonymousBucket
	}
	return out
}

// ResumeObjectName builds "<bucket>/<unix millis>-<8 hex><ext>".
func ResumeObjectName(email, fileName string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(fileName)))
	if strings.ContainsAny(ext, `/\ `) {
		ext = ""
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	name := strconv.FormatInt(now.UnixMilli(), 10) + "-" + suffix + ext
	return path.Join(EmailBucket(email), name)
}
