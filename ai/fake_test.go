package ai

import (
	"context"
	"errors"
	"sync"
)

// fakeModel answers prompts with canned replies, in order
type fakeModel struct {
	name    string
	replies []string
	errs    []error

	mu      sync.Mutex
	prompts []string
	images  [][]ImagePart
}

func (f *fakeModel) Name() string {
	if f.name == "" {
		return "fake"
	}
	return f.name
}

func (f *fakeModel) Configured() bool { return true }

func (f *fakeModel) Generate(_ context.Context, prompt string, images ...ImagePart) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	i := len(f.prompts)
	f.prompts = append(f.prompts, prompt)
	f.images = append(f.images, images)

	if i < len(f.errs) && f.errs[i] != nil {
		return "", f.errs[i]
	}
	if i < len(f.replies) {
		return f.replies[i], nil
	}
	return "", errors.New("no reply configured")
}

func (f *fakeModel) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

type unconfiguredModel struct{ fakeModel }

func (*unconfiguredModel) Configured() bool { return false }
