package gcloud

// GrantResult reports what happened during the bootstrap sequence.
type GrantResult struct {
	// SetAccountErr holds the account-switch failure, if any. The
	// sequence continues regardless; the IAM call then runs against
	// whatever account is active.
	SetAccountErr error

	// ActiveConfig is the output of 'gcloud config list account',
	// shown to the operator for verification.
	ActiveConfig []byte

	// ListErr holds the config-list failure, if any.
	ListErr error

	// BindingOutput is the output of the add-iam-policy-binding call.
	BindingOutput []byte
}

// Grant runs the bootstrap sequence: switch the active account, list it
// back, then add the IAM policy binding. Failures of the first two steps
// are recorded in the result but never stop the sequence; the returned
// error is the binding call's alone.
func (t *Tool) Grant(account, project, member, role string) (*GrantResult, error) {
	result := &GrantResult{}

	_, result.SetAccountErr = t.SetAccount(account)

	result.ActiveConfig, result.ListErr = t.ActiveAccount()

	output, err := t.AddIamPolicyBinding(project, member, role)
	result.BindingOutput = output
	if err != nil {
		return result, err
	}

	return result, nil
}
