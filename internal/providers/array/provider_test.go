package array

import (
	"context"
	"reflect"
	"testing"
)

func TestElementwiseAddExact(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()

	result, err := p.Execute(ctx, "array.add", map[string]interface{}{
		"a": []interface{}{"0.1", "1"},
		"b": []interface{}{"0.2", "2"},
	}, nil)

	if err != nil || !result.Success {
		t.Fatalf("Add failed: %v", err)
	}

	want := []interface{}{0.3, int64(3)}
	if !reflect.DeepEqual(result.Data["result"], want) {
		t.Errorf("Expected %v, got %v", want, result.Data["result"])
	}
}

func TestElementwiseRank2(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()

	result, err := p.Execute(ctx, "array.multiply", map[string]interface{}{
		"a": []interface{}{[]interface{}{1, 2}, []interface{}{3, 4}},
		"b": []interface{}{[]interface{}{2, 2}, []interface{}{2, 2}},
	}, nil)

	if err != nil || !result.Success {
		t.Fatalf("Multiply failed: %v", err)
	}

	want := []interface{}{
		[]interface{}{int64(2), int64(4)},
		[]interface{}{int64(6), int64(8)},
	}
	if !reflect.DeepEqual(result.Data["result"], want) {
		t.Errorf("Expected %v, got %v", want, result.Data["result"])
	}
}

func TestElementwiseRank3(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()

	cube := []interface{}{
		[]interface{}{[]interface{}{1, 2}, []interface{}{3, 4}},
		[]interface{}{[]interface{}{5, 6}, []interface{}{7, 8}},
	}
	result, err := p.Execute(ctx, "array.subtract", map[string]interface{}{
		"a": cube,
		"b": cube,
	}, nil)

	if err != nil || !result.Success {
		t.Fatalf("Subtract failed: %v", err)
	}

	want := []interface{}{
		[]interface{}{[]interface{}{int64(0), int64(0)}, []interface{}{int64(0), int64(0)}},
		[]interface{}{[]interface{}{int64(0), int64(0)}, []interface{}{int64(0), int64(0)}},
	}
	if !reflect.DeepEqual(result.Data["result"], want) {
		t.Errorf("Expected zeros, got %v", result.Data["result"])
	}
}

func TestRankMismatch(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()

	result, err := p.Execute(ctx, "array.add", map[string]interface{}{
		"a": []interface{}{1, 2},
		"b": []interface{}{[]interface{}{1, 2}},
	}, nil)

	if err != nil {
		t.Fatalf("Execute errored: %v", err)
	}
	if result.Success {
		t.Error("Expected failure for mismatched ranks")
	}
}

func TestShapeMismatch(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()

	result, err := p.Execute(ctx, "array.add", map[string]interface{}{
		"a": []interface{}{1, 2, 3},
		"b": []interface{}{1, 2},
	}, nil)

	if err != nil {
		t.Fatalf("Execute errored: %v", err)
	}
	if result.Success {
		t.Error("Expected failure for mismatched lengths")
	}
}

func TestDivideByZeroElement(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()

	result, err := p.Execute(ctx, "array.divide", map[string]interface{}{
		"a": []interface{}{1, 2},
		"b": []interface{}{1, 0},
	}, nil)

	if err != nil {
		t.Fatalf("Execute errored: %v", err)
	}
	if result.Success {
		t.Error("Expected failure for zero divisor element")
	}
}

func TestScalarOps(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()

	result, err := p.Execute(ctx, "array.scale.multiply", map[string]interface{}{
		"values": []interface{}{[]interface{}{1, 2}, []interface{}{3, 4}},
		"scalar": "0.5",
	}, nil)

	if err != nil || !result.Success {
		t.Fatalf("Scalar multiply failed: %v", err)
	}

	want := []interface{}{
		[]interface{}{0.5, int64(1)},
		[]interface{}{1.5, int64(2)},
	}
	if !reflect.DeepEqual(result.Data["result"], want) {
		t.Errorf("Expected %v, got %v", want, result.Data["result"])
	}
}

func TestScalarDivideByZero(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()

	result, err := p.Execute(ctx, "array.scale.divide", map[string]interface{}{
		"values": []interface{}{1, 2},
		"scalar": 0,
	}, nil)

	if err != nil {
		t.Fatalf("Execute errored: %v", err)
	}
	if result.Success {
		t.Error("Expected failure for zero scalar divisor")
	}
}

func TestToList(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()

	result, err := p.Execute(ctx, "array.tolist", map[string]interface{}{
		"values": []interface{}{"1.0", "2.5", "3e2"},
	}, nil)

	if err != nil || !result.Success {
		t.Fatalf("ToList failed: %v", err)
	}

	want := []interface{}{int64(1), 2.5, int64(300)}
	if !reflect.DeepEqual(result.Data["result"], want) {
		t.Errorf("Expected %v, got %v", want, result.Data["result"])
	}
}

func TestConstructionFailure(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()

	result, err := p.Execute(ctx, "array.tolist", map[string]interface{}{
		"values": []interface{}{"abc"},
	}, nil)

	if err != nil {
		t.Fatalf("Execute errored: %v", err)
	}
	if result.Success {
		t.Error("Expected failure for non-numeric element")
	}
}

func TestReductions(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()

	result, err := p.Execute(ctx, "array.sum", map[string]interface{}{
		"values": []interface{}{"0.1", "0.2", "0.3"},
	}, nil)
	if err != nil || !result.Success {
		t.Fatalf("Sum failed: %v", err)
	}
	if result.Data["exact"] != "0.6" {
		t.Errorf("Expected exact 0.6, got %v", result.Data["exact"])
	}

	result, err = p.Execute(ctx, "array.mean", map[string]interface{}{
		"values": []interface{}{1, 2, 3, 4},
	}, nil)
	if err != nil || !result.Success {
		t.Fatalf("Mean failed: %v", err)
	}
	if result.Data["exact"] != "2.5" {
		t.Errorf("Expected exact 2.5, got %v", result.Data["exact"])
	}

	result, err = p.Execute(ctx, "array.mean", map[string]interface{}{
		"values": []interface{}{},
	}, nil)
	if err != nil {
		t.Fatalf("Execute errored: %v", err)
	}
	if result.Success {
		t.Error("Expected failure for mean of empty array")
	}
}

func TestCumSum(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()

	result, err := p.Execute(ctx, "array.cumsum", map[string]interface{}{
		"values": []interface{}{1, 2, 3},
	}, nil)

	if err != nil || !result.Success {
		t.Fatalf("CumSum failed: %v", err)
	}

	want := []interface{}{int64(1), int64(3), int64(6)}
	if !reflect.DeepEqual(result.Data["result"], want) {
		t.Errorf("Expected %v, got %v", want, result.Data["result"])
	}
}

func TestDot(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()

	result, err := p.Execute(ctx, "array.dot", map[string]interface{}{
		"a": []interface{}{1, 2, 3},
		"b": []interface{}{4, 5, 6},
	}, nil)

	if err != nil || !result.Success {
		t.Fatalf("Dot failed: %v", err)
	}

	if result.Data["exact"] != "32" {
		t.Errorf("Expected exact 32, got %v", result.Data["exact"])
	}
}

func TestEqual(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()

	result, err := p.Execute(ctx, "array.equal", map[string]interface{}{
		"a": []interface{}{"1.0", "2"},
		"b": []interface{}{1, "2.000"},
	}, nil)
	if err != nil || !result.Success {
		t.Fatalf("Equal failed: %v", err)
	}
	if result.Data["result"] != true {
		t.Error("Expected equal arrays")
	}

	result, err = p.Execute(ctx, "array.equal", map[string]interface{}{
		"a": []interface{}{1, 2},
		"b": []interface{}{[]interface{}{1, 2}},
	}, nil)
	if err != nil || !result.Success {
		t.Fatalf("Equal failed: %v", err)
	}
	if result.Data["result"] != false {
		t.Error("Expected unequal ranks to compare false")
	}
}

func TestDefinitionRoutesAllTools(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()

	def := p.Definition()
	if def.ID != "array" {
		t.Errorf("Expected service ID array, got %s", def.ID)
	}

	for _, tool := range def.Tools {
		result, err := p.Execute(ctx, tool.ID, map[string]interface{}{}, nil)
		if err != nil {
			t.Fatalf("Execute(%s) errored: %v", tool.ID, err)
		}
		if !result.Success && result.Error != nil && *result.Error == "unknown tool: "+tool.ID {
			t.Errorf("Tool %s advertised but not routed", tool.ID)
		}
	}
}
