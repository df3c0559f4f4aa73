package ports

import "context"

// CommandRunner executes an external command. Implementations must admit
// every command through the concurrency gate so the global in-flight cap
// holds across dependency resolution and uploads.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	// Run executes name with args in dir (empty means the process working
	// directory) and returns captured stdout and stderr. A non-zero exit
	// yields an error; stderr is still returned for classification.
	Run(ctx context.Context, dir, name string, args ...string) (stdout, stderr string, err error)
}
