package memory_test

import (
	"testing"

	"github.com/Hakkology/MuginCAD-sub000/pkg/adapters/memory"
	"github.com/Hakkology/MuginCAD-sub000/pkg/ports"
)

func TestMemoryStore_Contract(t *testing.T) {
	store := memory.NewStore()
	ports.RunProjectStoreContract(t, store)
}
