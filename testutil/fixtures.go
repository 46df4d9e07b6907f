package testutil

// GoldenModel is a minimal but complete model document exercising a
// required option, an optional option with a default, an either
// constraint, and a require dependency — used across package tests that
// need a realistic model without each hand-rolling one.
const GoldenModel = `{
  "header": {"author": "core", "doc": "golden fixture model", "version": "1"},
  "body": {
    "name": {"kind": "string", "arity": "1", "doc": "required name"},
    "retries": {"kind": "integer", "arity": "?", "doc": "retry count", "default": 3, "range": "[0,10]"},
    "mode": {"kind": "string", "arity": "?", "doc": "run mode", "either": ["fast", "safe"]},
    "enable_tls": {"kind": "boolean", "arity": "?", "doc": "enable TLS", "deps": [{"require": ["cert_path"]}]},
    "cert_path": {"kind": "string", "arity": "?", "doc": "TLS certificate path"}
  }
}`

// GoldenInstanceMinimal satisfies GoldenModel with only the required
// option present; expand_instance should inject retries' default.
const GoldenInstanceMinimal = `{"name": "svc-a"}`

// GoldenInstanceFull exercises every optional branch of GoldenModel.
const GoldenInstanceFull = `{"name": "svc-a", "retries": 5, "mode": "fast", "enable_tls": true, "cert_path": "/etc/svc-a/tls.pem"}`

// GoldenInstanceUnresolvedDependency omits cert_path despite requesting
// enable_tls, which resolve_instance must reject with
// errs.DependencyUnresolved.
const GoldenInstanceUnresolvedDependency = `{"name": "svc-a", "enable_tls": true}`
