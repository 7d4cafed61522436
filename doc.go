package mapskema

// Package mapskema validates, transforms, and documents nested data
// structures (mappings, sequences, scalars) against a declarative schema
// tree, without hand-written recursive checks per configuration shape.
//
// It provides:
//
// - A schema tree (Node) mirroring the shape of the data it constrains,
//   with literal members, regex-keyed members, array expansion, value
//   patterns, and validator/transformer callbacks
// - A stable error model via Issues (JSON Pointer path, code, message)
// - A single-pass, no-fail-fast data engine (Validate) with
//   transform-then-validate ordering and in-place mutation of the data
// - Schema self-validation (ValidateSchema) and schema composition
//   (Merge/MergeAt) with deterministic conflict reporting
//
// Design policy:
// - Keep only public APIs in the root package; decode helpers live under
//   source/, documentation rendering under docgen/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  schema, err := source.SchemaFromYAML(schemaDoc)
//  if iss := mapskema.ValidateSchema(schema); len(iss) > 0 { ... }
//  if iss := mapskema.Validate(ctx, schema, data); len(iss) > 0 {
//      fmt.Println(iss.Render())
//  }
//
