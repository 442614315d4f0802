package core

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/711pranjal/Egnyte-TrustLens/internal/corpus"
)

var fixedNow = time.Date(2024, 2, 1, 9, 30, 0, 0, time.UTC)

func sequentialIDs() IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("msg-%d", n)
	}
}

func newTestResponder(t *testing.T) *ResponseService {
	t.Helper()
	c := corpus.Default()
	resolver, err := NewScopeResolver(c, 16)
	require.NoError(t, err)
	return NewResponseService(c, resolver, DefaultKnowledge(),
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(sequentialIDs()))
}

func sourceIDs(sources []Source) []string {
	ids := make([]string, 0, len(sources))
	for _, s := range sources {
		ids = append(ids, s.ID)
	}
	return ids
}
