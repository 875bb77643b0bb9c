package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_DisabledByDefault(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, "http://localhost:11434", cfg.Endpoint)
	assert.Equal(t, "llama3.2", cfg.Model)
	assert.Equal(t, 10000, cfg.TimeoutMs)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("IASO_LLM_ENABLED", "true")
	t.Setenv("IASO_LLM_ENDPOINT", "http://llm.internal:11434")
	t.Setenv("IASO_LLM_MODEL", "mistral")
	t.Setenv("IASO_LLM_TIMEOUT_MS", "2500")
	t.Setenv("IASO_LLM_MAX_RETRIES", "3")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "http://llm.internal:11434", cfg.Endpoint)
	assert.Equal(t, "mistral", cfg.Model)
	assert.Equal(t, 2500, cfg.TimeoutMs)
	assert.Equal(t, 3, cfg.MaxRetries)
}

func TestLoadConfig_IgnoresBadValues(t *testing.T) {
	t.Setenv("IASO_LLM_TIMEOUT_MS", "not-a-number")
	t.Setenv("IASO_LLM_MAX_RETRIES", "-2")

	cfg := LoadConfig()
	assert.Equal(t, DefaultConfig().TimeoutMs, cfg.TimeoutMs)
	assert.Equal(t, DefaultConfig().MaxRetries, cfg.MaxRetries)
}

func TestTaskTimeout_TaskOverridesGlobal(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 8000, cfg.TaskTimeout(TaskNarrative))

	cfg.Tasks = nil
	assert.Equal(t, cfg.TimeoutMs, cfg.TaskTimeout(TaskNarrative))
}

func TestLoadConfig_NarrativeTimeoutEnv(t *testing.T) {
	t.Setenv("IASO_LLM_NARRATIVE_TIMEOUT_MS", "1234")
	cfg := LoadConfig()
	assert.Equal(t, 1234, cfg.TaskTimeout(TaskNarrative))
}
