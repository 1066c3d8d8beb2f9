package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaultpass/passmeter/internal/model"
	"github.com/vaultpass/passmeter/internal/service"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand_HasExpectedSubcommands(t *testing.T) {
	output, err := execute(t, "--help")
	require.NoError(t, err)

	for _, sub := range []string{"check", "generate", "themed", "tips"} {
		assert.Contains(t, output, sub, "Help missing %q command", sub)
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     []string
		notWant  string
	}{
		{
			name:     "strong",
			password: "Passw0rd!",
			want:     []string{"Strength: Strong (5/5)", "[####################]"},
			notWant:  "Suggestions:",
		},
		{
			name:     "weak",
			password: "abc",
			want: []string{
				"Strength: Weak (1/5)",
				"[####----------------]",
				"Password should be at least 8 characters long.",
				"Include uppercase letters.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := execute(t, "check", tt.password)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, output, w)
			}
			if tt.notWant != "" {
				assert.NotContains(t, output, tt.notWant)
			}
		})
	}
}

func TestCheck_Empty(t *testing.T) {
	_, err := execute(t, "check", "")
	assert.ErrorIs(t, err, service.ErrPasswordRequired)
}

func TestCheck_JSON(t *testing.T) {
	output, err := execute(t, "check", "--json", "password")
	require.NoError(t, err)

	var resp model.StrengthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, 2, resp.Score)
	assert.Equal(t, "Weak", resp.Band)
	assert.Len(t, resp.Suggestions, 3)
}

func TestGenerate(t *testing.T) {
	output, err := execute(t, "generate", "--length", "12", "--count", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(output), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		password, rest, ok := strings.Cut(line, "\t")
		require.True(t, ok, "line %q", line)
		assert.Len(t, password, 12)
		assert.Equal(t, "Strong (5/5)", rest)
	}
}

func TestGenerate_Seeded(t *testing.T) {
	first, err := execute(t, "generate", "--seed", "42", "--count", "2")
	require.NoError(t, err)
	second, err := execute(t, "generate", "--seed", "42", "--count", "2")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"zero length", []string{"generate", "--length", "0"}, service.ErrLengthOutOfRange},
		{"negative length", []string{"generate", "--length=-3"}, service.ErrLengthOutOfRange},
		{"too short", []string{"generate", "--length", "7"}, service.ErrLengthOutOfRange},
		{"too long", []string{"generate", "--length", "17"}, service.ErrLengthOutOfRange},
		{"zero count", []string{"generate", "--count", "0"}, errCountRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCheck_TooLong(t *testing.T) {
	_, err := execute(t, "check", strings.Repeat("a", 257))
	assert.ErrorIs(t, err, service.ErrPasswordTooLong)
}

func TestThemed_StrictJSON(t *testing.T) {
	output, err := execute(t, "themed", "--strict", "--seed", "7", "--count", "5", "--json")
	require.NoError(t, err)

	var results []model.GenerateResponse
	require.NoError(t, json.Unmarshal([]byte(output), &results))
	require.Len(t, results, 5)
	for _, r := range results {
		assert.Equal(t, 5, r.Score, "password %q", r.Password)
		require.NotNil(t, r.Strict)
		assert.True(t, *r.Strict)
	}
}

func TestThemed_Seeded(t *testing.T) {
	first, err := execute(t, "themed", "--seed", "3")
	require.NoError(t, err)
	second, err := execute(t, "themed", "--seed", "3")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Regexp(t, `^[A-Za-z]+\d{4}[^A-Za-z0-9]\t`, first)
}

func TestTips(t *testing.T) {
	output, err := execute(t, "tips")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(output), "\n")
	assert.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[0], "1. Length: "))
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		progress float64
		want     string
	}{
		{0, "[----]"},
		{0.4, "[##--]"},
		{1, "[####]"},
		{1.5, "[####]"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, progressBar(tt.progress, 4))
	}
}
