package math

import (
	"context"
	gomath "math"
	"testing"
)

func TestArithmeticExact(t *testing.T) {
	m := NewProvider(50)
	ctx := context.Background()

	result, err := m.Execute(ctx, "math.add", map[string]interface{}{
		"a": "0.1",
		"b": "0.2",
	}, nil)

	if err != nil || !result.Success {
		t.Fatalf("Add failed: %v", err)
	}

	if result.Data["exact"] != "0.3" {
		t.Errorf("Expected exact 0.3, got %v", result.Data["exact"])
	}
}

func TestDivideByZero(t *testing.T) {
	m := NewProvider(50)
	ctx := context.Background()

	result, err := m.Execute(ctx, "math.divide", map[string]interface{}{
		"a": 1,
		"b": 0,
	}, nil)

	if err != nil {
		t.Fatalf("Execute errored: %v", err)
	}
	if result.Success {
		t.Error("Expected failure for division by zero")
	}
}

func TestFactorial(t *testing.T) {
	m := NewProvider(50)
	ctx := context.Background()

	result, err := m.Execute(ctx, "math.factorial", map[string]interface{}{
		"n": 20,
	}, nil)

	if err != nil || !result.Success {
		t.Fatalf("Factorial failed: %v", err)
	}

	if result.Data["exact"] != "2432902008176640000" {
		t.Errorf("Expected 20! exact, got %v", result.Data["exact"])
	}
}

func TestFactorialTooLarge(t *testing.T) {
	m := NewProvider(50)
	ctx := context.Background()

	result, err := m.Execute(ctx, "math.factorial", map[string]interface{}{
		"n": int64(1000000000000000),
	}, nil)

	if err != nil {
		t.Fatalf("Unexpected hard error: %v", err)
	}
	if result.Success {
		t.Error("Expected failure for oversized n")
	}
}

func TestDigitalRootExtremes(t *testing.T) {
	m := NewProvider(50)
	ctx := context.Background()

	result, err := m.Execute(ctx, "math.digitalRoot", map[string]interface{}{
		"n": -942,
	}, nil)
	if err != nil || !result.Success {
		t.Fatalf("DigitalRoot failed: %v", err)
	}
	if result.Data["result"] != int64(6) {
		t.Errorf("Expected 6, got %v", result.Data["result"])
	}

	result, err = m.Execute(ctx, "math.digitalRoot", map[string]interface{}{
		"n": int64(gomath.MinInt64),
	}, nil)
	if err != nil {
		t.Fatalf("Unexpected hard error: %v", err)
	}
	if result.Success {
		t.Error("Expected failure for minimum int64")
	}
}

func TestTrigSin(t *testing.T) {
	m := NewProvider(50)
	ctx := context.Background()

	result, err := m.Execute(ctx, "math.sin", map[string]interface{}{
		"x": 0,
	}, nil)

	if err != nil || !result.Success {
		t.Fatalf("Sin failed: %v", err)
	}

	if result.Data["exact"] != "0" {
		t.Errorf("Expected sin(0) = 0, got %v", result.Data["exact"])
	}
}

func TestGeometryAreaSquare(t *testing.T) {
	m := NewProvider(50)
	ctx := context.Background()

	result, err := m.Execute(ctx, "math.areaSquare", map[string]interface{}{
		"side": "1.5",
	}, nil)

	if err != nil || !result.Success {
		t.Fatalf("AreaSquare failed: %v", err)
	}

	if result.Data["exact"] != "2.25" {
		t.Errorf("Expected 2.25, got %v", result.Data["exact"])
	}
}

func TestFinanceSimpleInterest(t *testing.T) {
	m := NewProvider(50)
	ctx := context.Background()

	result, err := m.Execute(ctx, "math.simpleInterest", map[string]interface{}{
		"principal": 1000,
		"rate":      5,
		"time":      2,
	}, nil)

	if err != nil || !result.Success {
		t.Fatalf("SimpleInterest failed: %v", err)
	}

	if result.Data["exact"] != "100" {
		t.Errorf("Expected 100, got %v", result.Data["exact"])
	}
}

func TestStatsMean(t *testing.T) {
	m := NewProvider(50)
	ctx := context.Background()

	result, err := m.Execute(ctx, "math.mean", map[string]interface{}{
		"numbers": []interface{}{1.0, 2.0, 3.0, 4.0},
	}, nil)

	if err != nil || !result.Success {
		t.Fatalf("Mean failed: %v", err)
	}

	if result.Data["result"] != 2.5 {
		t.Errorf("Expected 2.5, got %v", result.Data["result"])
	}
}

func TestStatsSum(t *testing.T) {
	m := NewProvider(50)
	ctx := context.Background()

	result, err := m.Execute(ctx, "math.sum", map[string]interface{}{
		"numbers": []interface{}{1.0, 2.0, 3.0},
	}, nil)

	if err != nil || !result.Success {
		t.Fatalf("Sum failed: %v", err)
	}

	if result.Data["result"] != 6.0 {
		t.Errorf("Expected 6, got %v", result.Data["result"])
	}
}

func TestConstantLookup(t *testing.T) {
	m := NewProvider(50)
	ctx := context.Background()

	result, err := m.Execute(ctx, "math.constant", map[string]interface{}{
		"name": "pi",
	}, nil)

	if err != nil || !result.Success {
		t.Fatalf("Constant failed: %v", err)
	}

	exact, _ := result.Data["exact"].(string)
	if len(exact) < 10 || exact[:4] != "3.14" {
		t.Errorf("Expected pi, got %v", exact)
	}

	result, err = m.Execute(ctx, "math.constant", map[string]interface{}{
		"name": "nope",
	}, nil)

	if err != nil {
		t.Fatalf("Execute errored: %v", err)
	}
	if result.Success {
		t.Error("Expected failure for unknown constant")
	}
}

func TestUnknownTool(t *testing.T) {
	m := NewProvider(50)
	ctx := context.Background()

	result, err := m.Execute(ctx, "math.nope", nil, nil)

	if err != nil {
		t.Fatalf("Execute errored: %v", err)
	}
	if result.Success {
		t.Error("Expected failure for unknown tool")
	}
}

func TestDefinitionHasAllTools(t *testing.T) {
	m := NewProvider(50)

	def := m.Definition()
	if def.ID != "math" {
		t.Errorf("Expected service ID math, got %s", def.ID)
	}

	seen := make(map[string]bool)
	for _, tool := range def.Tools {
		if seen[tool.ID] {
			t.Errorf("Duplicate tool ID: %s", tool.ID)
		}
		seen[tool.ID] = true
	}

	// Every advertised tool must route somewhere.
	ctx := context.Background()
	for _, tool := range def.Tools {
		result, err := m.Execute(ctx, tool.ID, map[string]interface{}{}, nil)
		if err != nil {
			t.Fatalf("Execute(%s) errored: %v", tool.ID, err)
		}
		if result.Success {
			continue
		}
		if result.Error != nil && *result.Error == "unknown tool: "+tool.ID {
			t.Errorf("Tool %s advertised but not routed", tool.ID)
		}
	}
}
