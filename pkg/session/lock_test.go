package session

import (
	"context"
	"fmt"
	"testing"

	"github.com/Hakkology/MuginCAD-sub000/pkg/adapters/memory"
	"github.com/Hakkology/MuginCAD-sub000/pkg/domain"
)

func TestManager_LockLifecycle(t *testing.T) {
	mgr := NewManager(memory.NewStore())
	ctx := context.Background()
	count := 1000

	for i := 0; i < count; i++ {
		sid := fmt.Sprintf("session-%d", i)
		_ = mgr.Save(ctx, sid, &domain.Project{Version: domain.ProjectVersion})
		_ = mgr.Delete(ctx, sid)
	}

	if n := len(mgr.locks); n != 0 {
		t.Errorf("Memory Leak Detected: %d locks remaining in memory after Delete", n)
	}
	if n := len(mgr.live); n != 0 {
		t.Errorf("%d drawings remaining in memory after Delete", n)
	}
}
