package math

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestVec3Add(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{0.5, -2, 1}
	got := a.Add(b)
	want := Vec3{1.5, 0, 4}
	if got != want {
		t.Errorf("Vec3.Add() = %v, want %v", got, want)
	}
}

func TestVec3MaxComponent(t *testing.T) {
	tests := []struct {
		v    Vec3
		want float64
	}{
		{Vec3{1, 1, 1}, 1},
		{Vec3{2, 0.5, 1}, 2},
		{Vec3{0.5, 0.25, 0.75}, 0.75},
		{Vec3{-1, -2, -3}, -1},
	}
	for _, tt := range tests {
		if got := tt.v.MaxComponent(); got != tt.want {
			t.Errorf("%v.MaxComponent() = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestVec3String(t *testing.T) {
	tests := []struct {
		v    Vec3
		want string
	}{
		{Vec3{}, "0,0,0"},
		{Vec3{0.5, 0, 0.5}, "0.5,0,0.5"},
		{Vec3{0, -2, 0}, "0,-2,0"},
		{Vec3{-0.5, -0.35, 0}, "-0.5,-0.35,0"},
		{Vec3{1.0 / 3.0, 2, 100000}, "0.333333,2,100000"},
		{Vec3{1e6, 0, 0}, "1e+06,0,0"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("Vec3%v.String() = %q, want %q", [3]float64{tt.v.X, tt.v.Y, tt.v.Z}, got, tt.want)
		}
	}
}

func TestVec3MarshalYAML(t *testing.T) {
	out, err := yaml.Marshal(struct {
		Translation Vec3 `yaml:"translation"`
	}{Vec3{0, 0.75, 0.5}})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(out) != "translation: 0,0.75,0.5\n" {
		t.Errorf("unexpected YAML: %q", out)
	}
}
