package main

import "testing"

func TestResolveLocation(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		id    string
		query string
		want  string
	}{
		{name: "nothing", want: "?"},
		{name: "positional search", args: []string{"?q=Monet"}, want: "?q=Monet"},
		{name: "positional detail", args: []string{"?id=27992&q=Monet"}, want: "?id=27992&q=Monet"},
		{name: "flags only", id: "27992", query: "water lilies", want: "?id=27992&q=water%20lilies"},
		{name: "flag overrides positional", args: []string{"?q=Monet"}, query: "Degas", want: "?q=Degas"},
		{name: "id flag keeps positional query", args: []string{"q=Monet"}, id: "1", want: "?id=1&q=Monet"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveLocation(tt.args, tt.id, tt.query); got != tt.want {
				t.Fatalf("resolveLocation = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRootCmd_RejectsExtraArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"?q=a", "?q=b"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an error for two positional arguments")
	}
}
