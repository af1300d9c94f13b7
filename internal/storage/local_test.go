package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalUploader_Upload(t *testing.T) {
	dir := t.TempDir()
	u, err := NewLocalUploader(dir)
	require.NoError(t, err)

	got, err := u.Upload(context.Background(), "a_b_com/1-abc.pdf", "application/pdf", strings.NewReader("%PDF-1.4"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(u.BaseDir(), "a_b_com", "1-abc.pdf"), got)
	b, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(b))
}

func TestLocalUploader_NeverOverwrites(t *testing.T) {
	u, err := NewLocalUploader(t.TempDir())
	require.NoError(t, err)

	_, err = u.Upload(context.Background(), "x/same.pdf", "", strings.NewReader("first"))
	require.NoError(t, err)

	_, err = u.Upload(context.Background(), "x/same.pdf", "", strings.NewReader("second"))
	require.ErrorIs(t, err, ErrExists)

	b, err := os.ReadFile(filepath.Join(u.BaseDir(), "x", "same.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "first", string(b))
}

func TestLocalUploader_StaysInsideBaseDir(t *testing.T) {
	u, err := NewLocalUploader(t.TempDir())
	require.NoError(t, err)

	got, err := u.Upload(context.Background(), "../../etc/evil.pdf", "", strings.NewReader("x"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, u.BaseDir()+string(filepath.Separator)), got)
}

func TestLocalUploader_CanceledContext(t *testing.T) {
	u, err := NewLocalUploader(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = u.Upload(ctx, "a/b.pdf", "", strings.NewReader("x"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewLocalUploader_EmptyDir(t *testing.T) {
	_, err := NewLocalUploader("  ")
	assert.Error(t, err)
}

func TestEmailBucket(t *testing.T) {
	cases := map[string]string{
		"a@b.com":             "a_b_com",
		"  John.Doe@Mail.io ": "john_doe_mail_io",
		"":                    "anonymous",
		"../../":              "anonymous",
		"first-last_1@x.org":  "first-last_1_x_org",
	}
	for in, want := range cases {
		assert.Equal(t, want, EmailBucket(in), in)
	}
}

func TestResumeObjectName(t *testing.T) {
	now := time.UnixMilli(1767225600000)

	name := ResumeObjectName("a@b.com", "My Resume.PDF", now)
	assert.True(t, strings.HasPrefix(name, "a_b_com/1767225600000-"), name)
	assert.True(t, strings.HasSuffix(name, ".pdf"), name)

	anon := ResumeObjectName("", "cv.docx", now)
	assert.True(t, strings.HasPrefix(anon, "anonymous/"), anon)

	noExt := ResumeObjectName("a@b.com", "resume", now)
	assert.Equal(t, "", filepath.Ext(noExt))
}

func TestResumeObjectName_UniqueUnderConcurrency(t *testing.T) {
	u, err := NewLocalUploader(t.TempDir())
	require.NoError(t, err)

	now := time.Now()
	emails := []string{"a@b.com", "c@d.com", "a@b.com", "e@f.com"}

	var (
		mu    sync.Mutex
		paths = map[string]struct{}{}
		wg    sync.WaitGroup
	)
	for i := 0; i < 50; i++ {
		for _, email := range emails {
			wg.Add(1)
			go func(email string) {
				defer wg.Done()
				p, err := u.Upload(context.Background(), ResumeObjectName(email, "resume.pdf", now), "", strings.NewReader("x"))
				if !assert.NoError(t, err) {
					return
				}
				mu.Lock()
				paths[p] = struct{}{}
				mu.Unlock()
			}(email)
		}
	}
	wg.Wait()

	assert.Len(t, paths, 50*len(emails))
}
