// Package actions contains the business logic behind the saveit commands.
// Each action takes a *runtime.Context and an options struct.
package actions
