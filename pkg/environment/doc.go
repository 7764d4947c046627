// Package environment provides a deployment-environment label and context
// helpers for propagating it through request handling.
package environment
