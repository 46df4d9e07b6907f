// Package model implements Model and Header from spec.md §3.4/§4.7: a
// loaded schema unit composed of a header, a templates section, a body,
// and the ordered list of models it includes, grounded on goyang's
// pkg/yang/entry.go ToEntry tree build and original_source/libace's
// model/Model.cpp + common Author.h.
package model

import (
	"github.com/openconfig/aceconf/internal/attribute"
	"github.com/openconfig/aceconf/internal/basictype"
	"github.com/openconfig/aceconf/internal/errs"
	"github.com/openconfig/aceconf/internal/path"
	"github.com/openconfig/aceconf/internal/section"
	"github.com/openconfig/aceconf/internal/tree"
)

// Header carries a model file's package identity, composition, and
// documentation metadata (spec.md §3.4/§6).
type Header struct {
	Author    string
	Doc       string
	Version   string
	Package   []string
	Namespace []string
	Includes  []string
	Triggers  []path.Path
}

func named(name string) path.Path {
	p, _ := path.Parse("$." + name)
	return p
}

func stringList(v *tree.Value) ([]string, error) {
	if v.Kind() != tree.Array {
		return nil, errs.New(errs.AttributeSchema, "", "expected a list of strings")
	}
	var out []string
	var firstErr error
	v.Each(func(c *tree.Value) {
		if firstErr != nil {
			return
		}
		s, err := c.Str()
		if err != nil {
			firstErr = errs.New(errs.AttributeSchema, "", "list entries must be strings")
			return
		}
		out = append(out, s)
	})
	return out, firstErr
}

// HeaderFromTree parses a Header from the "header" object of a model
// file: author, doc, and version are mandatory; package, namespace,
// include, and trigger are optional, per spec.md §6's model file layout.
func HeaderFromTree(v *tree.Value) (*Header, error) {
	if v.Kind() != tree.Object {
		return nil, errs.New(errs.AttributeSchema, "header", "header must be an object")
	}
	h := &Header{}

	authorVal, ok := v.Get1(named("author"))
	if !ok {
		return nil, errs.New(errs.AttributeSchema, "header", "header requires an author")
	}
	author, err := authorVal.Str()
	if err != nil {
		return nil, errs.New(errs.AttributeSchema, "header", "author must be a string")
	}
	h.Author = author

	docVal, ok := v.Get1(named("doc"))
	if !ok {
		return nil, errs.New(errs.AttributeSchema, "header", "header requires doc")
	}
	doc, err := docVal.Str()
	if err != nil {
		return nil, errs.New(errs.AttributeSchema, "header", "doc must be a string")
	}
	h.Doc = doc

	versionVal, ok := v.Get1(named("version"))
	if !ok {
		return nil, errs.New(errs.AttributeSchema, "header", "header requires a version")
	}
	version, err := versionVal.Str()
	if err != nil {
		return nil, errs.New(errs.AttributeSchema, "header", "version must be a string")
	}
	h.Version = version

	if pkgVal, ok := v.Get1(named("package")); ok {
		pkg, err := stringList(pkgVal)
		if err != nil {
			return nil, err
		}
		h.Package = pkg
	}
	if nsVal, ok := v.Get1(named("namespace")); ok {
		ns, err := stringList(nsVal)
		if err != nil {
			return nil, err
		}
		h.Namespace = ns
	}
	if incVal, ok := v.Get1(named("include")); ok {
		inc, err := stringList(incVal)
		if err != nil {
			return nil, err
		}
		h.Includes = inc
	}
	if trigVal, ok := v.Get1(named("trigger")); ok {
		strs, err := stringList(trigVal)
		if err != nil {
			return nil, err
		}
		for _, s := range strs {
			p, err := path.Parse(s)
			if err != nil {
				return nil, err
			}
			if !p.Global() {
				return nil, errs.New(errs.InvalidPath, s, "trigger path must be globally rooted")
			}
			h.Triggers = append(h.Triggers, p)
		}
	}
	return h, nil
}

// Model is a loaded schema unit: a Header plus the templates and body
// sections it declares, composed with whatever its includes contribute
// (spec.md §3.4).
type Model struct {
	Header    *Header
	Templates *section.Section
	Body      *section.Body
	Includes  []*Model
}

// FromTree parses a single model file's top-level object into a Model,
// without resolving its includes: header, body (mandatory), and
// templates (optional), per spec.md §6.
func FromTree(v *tree.Value) (*Model, error) {
	if v.Kind() != tree.Object {
		return nil, errs.New(errs.AttributeSchema, "", "model file must be an object")
	}
	headerVal, ok := v.Get1(named("header"))
	if !ok {
		return nil, errs.New(errs.AttributeSchema, "", "model file requires a header")
	}
	header, err := HeaderFromTree(headerVal)
	if err != nil {
		return nil, err
	}

	bodyVal, ok := v.Get1(named("body"))
	if !ok {
		return nil, errs.New(errs.AttributeSchema, "", "model file requires a body")
	}
	bodySection, err := section.FromTree(bodyVal)
	if err != nil {
		return nil, err
	}

	templates := section.New()
	if templVal, ok := v.Get1(named("templates")); ok {
		templates, err = section.FromTree(templVal)
		if err != nil {
			return nil, err
		}
	}

	return &Model{
		Header:    header,
		Templates: templates,
		Body:      section.NewBody(bodySection),
	}, nil
}

// Compose merges this model's includes into its templates and body, in
// file order, and then overrides the merged result with the model's own
// declarations, per spec.md §4.7: "each include is loaded, flattened, and
// merged into the current model's templates and body in file order; the
// current model then overrides the merged result." Cycle detection
// happens one layer up, in the loader that resolves Header.Includes into
// concrete Models (internal/registry), since only it knows the
// currently-loading package-path stack.
func (m *Model) Compose(includes []*Model) error {
	mergedTemplates := section.New()
	mergedBody := section.New()
	for _, inc := range includes {
		if err := mergedTemplates.Merge(inc.Templates); err != nil {
			return err
		}
		if err := mergedBody.Merge(inc.Body.Section); err != nil {
			return err
		}
	}
	if err := mergedTemplates.Override(m.Templates); err != nil {
		return err
	}
	if err := mergedBody.Override(m.Body.Section); err != nil {
		return err
	}
	m.Templates = mergedTemplates
	m.Body = section.NewBody(mergedBody)
	m.Includes = includes
	return nil
}

// CheckModel validates the model's own templates and body, per spec.md
// §4.7's capability list (check_model is a per-section, recursive walk).
func (m *Model) CheckModel() error {
	if err := m.Templates.CheckModel(); err != nil {
		return err
	}
	return m.Body.CheckModel()
}

// FlattenModel points each body Selector at the prototype its template
// attribute names in the templates section (when that section declares
// it), then recursively flattens both sections.
func (m *Model) FlattenModel() error {
	for _, name := range m.Body.Names() {
		t, _ := m.Body.Get(name)
		a, ok := t.Attrs.Get("template")
		if t.Kind() != basictype.Selector || !ok {
			continue
		}
		if proto, ok := m.Templates.Get(a.(*attribute.TemplateAttr).Value); ok {
			t.TemplateProto = proto
		}
	}
	if err := m.Templates.FlattenModel(); err != nil {
		return err
	}
	return m.Body.FlattenModel()
}

// ValidateModel recursively validates both sections.
func (m *Model) ValidateModel() error {
	if err := m.Templates.ValidateModel(); err != nil {
		return err
	}
	return m.Body.ValidateModel()
}

// PackagePath renders the header's package as the filesystem-style path
// used to key models in a registry ("a/b/c/"), per spec.md §3.4.
func (h *Header) PackagePath() string {
	out := ""
	for _, p := range h.Package {
		out += p + "/"
	}
	return out
}
