// Package gcloud wraps the gcloud CLI invocations the bootstrap needs.
//
// It never parses gcloud output; commands receive the combined output for
// display and an error carrying the exit status.
package gcloud

import (
	"fmt"
	"os/exec"
)

// Runner runs the gcloud binary with the given arguments and returns its
// combined output.
type Runner interface {
	Run(args ...string) ([]byte, error)
}

// CLIRunner invokes the real gcloud binary from PATH.
type CLIRunner struct{}

func (CLIRunner) Run(args ...string) ([]byte, error) {
	return exec.Command("gcloud", args...).CombinedOutput()
}

// Tool issues gcloud commands through a Runner.
type Tool struct {
	runner Runner
}

// New returns a Tool backed by the real gcloud binary.
func New() *Tool {
	return &Tool{runner: CLIRunner{}}
}

// NewWithRunner returns a Tool backed by the given Runner.
func NewWithRunner(r Runner) *Tool {
	return &Tool{runner: r}
}

// SetAccountArgs builds the arguments for switching the active account.
func SetAccountArgs(account string) []string {
	return []string{"config", "set", "account", account}
}

// ListAccountArgs builds the arguments for printing the active account.
func ListAccountArgs() []string {
	return []string{"config", "list", "account"}
}

// AddIamPolicyBindingArgs builds the arguments for granting role to member
// on project.
func AddIamPolicyBindingArgs(project, member, role string) []string {
	return []string{
		"projects", "add-iam-policy-binding", project,
		"--member=" + member,
		"--role=" + role,
	}
}

// ServiceAccountEmail derives the platform service account email for a project.
func ServiceAccountEmail(name, project string) string {
	return fmt.Sprintf("%s@%s.iam.gserviceaccount.com", name, project)
}

// Member formats a service account email as an IAM member string.
func Member(serviceAccountEmail string) string {
	return "serviceAccount:" + serviceAccountEmail
}

// SetAccount mutates the local gcloud configuration's active account.
func (t *Tool) SetAccount(account string) ([]byte, error) {
	output, err := t.runner.Run(SetAccountArgs(account)...)
	if err != nil {
		return output, fmt.Errorf("gcloud config set account failed: %w\n%s", err, output)
	}
	return output, nil
}

// ActiveAccount reads the local gcloud configuration's account section.
func (t *Tool) ActiveAccount() ([]byte, error) {
	output, err := t.runner.Run(ListAccountArgs()...)
	if err != nil {
		return output, fmt.Errorf("gcloud config list account failed: %w\n%s", err, output)
	}
	return output, nil
}

// AddIamPolicyBinding grants role to member on project.
func (t *Tool) AddIamPolicyBinding(project, member, role string) ([]byte, error) {
	output, err := t.runner.Run(AddIamPolicyBindingArgs(project, member, role)...)
	if err != nil {
		return output, fmt.Errorf("gcloud projects add-iam-policy-binding failed: %w\n%s", err, output)
	}
	return output, nil
}
