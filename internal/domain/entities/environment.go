package entities

// Environment variables read by the action at runtime.
const (
	EnvRepository               = "GITHUB_REPOSITORY"
	EnvOutput                   = "GITHUB_OUTPUT"
	EnvStepSummary              = "GITHUB_STEP_SUMMARY"
	EnvWorkspace                = "GITHUB_WORKSPACE"
	EnvSHA                      = "GITHUB_SHA"
	EnvEventPath                = "GITHUB_EVENT_PATH"
	EnvInputGitHubToken         = "INPUT_GITHUB_TOKEN"
	EnvInputChangelogPath       = "INPUT_CHANGELOG_PATH"
	EnvInputEventAPIMaxAttempts = "INPUT_EVENT_API_MAX_ATTEMPTS"
	EnvInputFailOnEventsAPIErr  = "INPUT_FAIL_ON_EVENTS_API_ERROR"
	EnvInputDotnet              = "INPUT_DOTNET"
)

// DummyCommitSHA is the sentinel used when a test must not hit a real commit.
const DummyCommitSHA = "not-a-real-commit"

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// SetenvFunc matches os.Setenv.
type SetenvFunc func(key, value string) error
