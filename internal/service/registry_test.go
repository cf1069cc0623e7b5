package service

import (
	"context"
	"testing"

	"github.com/decikit/decikit/internal/types"
)

type mockProvider struct {
	id string
}

func (m *mockProvider) Definition() types.Service {
	return types.Service{
		ID:           m.id,
		Name:         "Mock Service",
		Description:  "A mock service for testing",
		Category:     types.CategoryArray,
		Capabilities: []string{"elementwise", "scalar"},
		Tools: []types.Tool{
			{
				ID:          m.id + ".test",
				Name:        "Test Tool",
				Description: "A test tool",
				Returns:     "string",
			},
		},
	}
}

func (m *mockProvider) Execute(ctx context.Context, toolID string, params map[string]interface{}, callCtx *types.Context) (*types.Result, error) {
	return &types.Result{
		Success: true,
		Data:    map[string]interface{}{"result": "success"},
	}, nil
}

func TestRegister(t *testing.T) {
	r := NewRegistry()
	p := &mockProvider{id: "test"}

	if err := r.Register(p); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if _, ok := r.Get("test"); !ok {
		t.Error("Service should be registered")
	}
}

func TestRegisterEmptyID(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(&mockProvider{id: ""}); err == nil {
		t.Error("Register should reject an empty service ID")
	}
}

func TestList(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockProvider{id: "test1"})
	r.Register(&mockProvider{id: "test2"})

	services := r.List(nil)
	if len(services) != 2 {
		t.Errorf("Expected 2 services, got %d", len(services))
	}

	cat := types.CategoryArray
	filtered := r.List(&cat)
	if len(filtered) != 2 {
		t.Errorf("Expected 2 array services, got %d", len(filtered))
	}

	other := types.CategoryMath
	if got := r.List(&other); len(got) != 0 {
		t.Errorf("Expected 0 math services, got %d", len(got))
	}
}

func TestDiscover(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockProvider{id: "array"})

	results := r.Discover("array elementwise scalar", 5)
	if len(results) == 0 {
		t.Fatal("Should discover array service")
	}

	if results[0].ID != "array" {
		t.Errorf("Expected array service, got %s", results[0].ID)
	}
}

func TestExecute(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockProvider{id: "test"})

	ctx := context.Background()
	result, err := r.Execute(ctx, "test.test", map[string]interface{}{}, nil)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if !result.Success {
		t.Error("Expected successful execution")
	}
}

func TestExecuteUnknownService(t *testing.T) {
	r := NewRegistry()

	ctx := context.Background()
	result, err := r.Execute(ctx, "ghost.test", map[string]interface{}{}, nil)
	if err == nil {
		t.Error("Expected error for unknown service")
	}
	if result == nil || result.Success {
		t.Error("Expected failed result for unknown service")
	}
}

func TestExecuteBadToolID(t *testing.T) {
	r := NewRegistry()

	ctx := context.Background()
	if _, err := r.Execute(ctx, "noseparator", map[string]interface{}{}, nil); err == nil {
		t.Error("Expected error for malformed tool ID")
	}
}

func TestStats(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockProvider{id: "test1"})
	r.Register(&mockProvider{id: "test2"})

	stats := r.Stats()
	if stats["total_services"] != 2 {
		t.Errorf("Expected 2 services, got %v", stats["total_services"])
	}
	if stats["total_tools"] != 2 {
		t.Errorf("Expected 2 tools, got %v", stats["total_tools"])
	}
}
