package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVar_WholeSeconds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   time.Duration
		wantErr bool
	}{
		{name: "zero", value: 0},
		{name: "one second", value: time.Second},
		{name: "ninety minutes", value: 90 * time.Minute},
		{name: "half second", value: 500 * time.Millisecond, wantErr: true},
		{name: "second and a nanosecond", value: time.Second + 1, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Var(tt.value, "whole_seconds")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestStruct_DurationBounds(t *testing.T) {
	t.Parallel()

	type picker struct {
		Value time.Duration `validate:"min=1s,max=23h59m59s,whole_seconds"`
	}

	assert.NoError(t, Struct(picker{Value: time.Minute}))
	assert.Error(t, Struct(picker{Value: 0}))
	assert.Error(t, Struct(picker{Value: 24 * time.Hour}))
	assert.Error(t, Struct(picker{Value: 1500 * time.Millisecond}))
}

func TestVar_HexColor(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Var("#FF5F87", "hexcolor"))
	assert.Error(t, Var("pink", "hexcolor"))
}
