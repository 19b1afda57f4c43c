package loaders

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ErrUnknownShape is returned when an "add" entry names neither a shape type
// nor a shape definition
var ErrUnknownShape = errors.New("unknown shape")

// shapeTypes lists the primitives a scene file can add
var shapeTypes = map[string]bool{
	"sphere":   true,
	"plane":    true,
	"cube":     true,
	"cylinder": true,
	"cone":     true,
	"group":    true,
}

// YAMLScene is a scene file with every definition resolved
type YAMLScene struct {
	Camera *CameraDef
	Light  *LightDef
	Shapes []ShapeDef
}

// CameraDef is an "add: camera" entry
type CameraDef struct {
	Width       int
	Height      int
	FieldOfView float64
	From        core.Tuple
	To          core.Tuple
	Up          core.Tuple
}

// LightDef is an "add: light" entry
type LightDef struct {
	At        core.Tuple
	Intensity core.Color
}

// ShapeDef is a shape entry with its transform list already multiplied out
type ShapeDef struct {
	Type      string
	Transform core.Matrix
	Material  MaterialDef
	Minimum   *float64 // cylinders and cones only
	Maximum   *float64
	Closed    bool
	Children  []ShapeDef // groups only
}

// MaterialDef holds the material fields a file set. Nil fields keep defaults.
type MaterialDef struct {
	Color           *core.Color
	Ambient         *float64
	Diffuse         *float64
	Specular        *float64
	Shininess       *float64
	Reflective      *float64
	Transparency    *float64
	RefractiveIndex *float64
	Pattern         *PatternDef
}

// PatternDef is a two-color pattern with its own transform
type PatternDef struct {
	Type      string // stripes, gradient, rings, checkers or test
	Colors    [2]core.Color
	Transform core.Matrix
}

// entry is one raw top-level or child item
type entry struct {
	Add         string    `yaml:"add"`
	Define      string    `yaml:"define"`
	Extend      string    `yaml:"extend"`
	Value       yaml.Node `yaml:"value"`
	Width       int       `yaml:"width"`
	Height      int       `yaml:"height"`
	FieldOfView float64   `yaml:"field-of-view"`
	From        []float64 `yaml:"from"`
	To          []float64 `yaml:"to"`
	Up          []float64 `yaml:"up"`
	At          []float64 `yaml:"at"`
	Intensity   []float64 `yaml:"intensity"`
	Material    yaml.Node `yaml:"material"`
	Transform   yaml.Node `yaml:"transform"`
	Min         *float64  `yaml:"min"`
	Max         *float64  `yaml:"max"`
	Closed      bool      `yaml:"closed"`
	Children    []entry   `yaml:"children"`
}

// rawMaterial mirrors the keys of a material mapping
type rawMaterial struct {
	Color           []float64   `yaml:"color"`
	Ambient         *float64    `yaml:"ambient"`
	Diffuse         *float64    `yaml:"diffuse"`
	Specular        *float64    `yaml:"specular"`
	Shininess       *float64    `yaml:"shininess"`
	Reflective      *float64    `yaml:"reflective"`
	Transparency    *float64    `yaml:"transparency"`
	RefractiveIndex *float64    `yaml:"refractive-index"`
	Pattern         *rawPattern `yaml:"pattern"`
}

type rawPattern struct {
	Type      string      `yaml:"type"`
	Colors    [][]float64 `yaml:"colors"`
	Transform yaml.Node   `yaml:"transform"`
}

// definition is a named value. parent is the definition it extends as it
// stood when this one was declared, so redefining a name cannot form a cycle.
type definition struct {
	parent *definition
	value  yaml.Node
}

// maxNesting bounds how deeply named references may chain
const maxNesting = 64

// yamlParser resolves names against the definitions seen so far
type yamlParser struct {
	defines map[string]*definition
	depth   int
}

// ParseYAML parses a scene file from r
func ParseYAML(r io.Reader) (*YAMLScene, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}

	var entries []entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("invalid scene file: %w", err)
	}

	p := &yamlParser{defines: make(map[string]*definition)}
	result := &YAMLScene{}

	for i, e := range entries {
		switch {
		case e.Define != "":
			def := &definition{value: e.Value}
			if e.Extend != "" {
				parent, ok := p.defines[e.Extend]
				if !ok {
					return nil, fmt.Errorf("entry %d: %q extends unknown definition %q", i, e.Define, e.Extend)
				}
				def.parent = parent
			}
			p.defines[e.Define] = def

		case e.Add == "camera":
			camera, err := parseCamera(e)
			if err != nil {
				return nil, fmt.Errorf("entry %d: %w", i, err)
			}
			result.Camera = camera

		case e.Add == "light":
			light, err := parseLight(e)
			if err != nil {
				return nil, fmt.Errorf("entry %d: %w", i, err)
			}
			result.Light = light

		case e.Add != "":
			shape, err := p.parseShape(e)
			if err != nil {
				return nil, fmt.Errorf("entry %d: %w", i, err)
			}
			result.Shapes = append(result.Shapes, shape)

		default:
			return nil, fmt.Errorf("entry %d: expected \"add\" or \"define\"", i)
		}
	}

	return result, nil
}

// LoadYAML loads and parses a .yml or .yaml scene file
func LoadYAML(filename string) (*YAMLScene, error) {
	lower := strings.ToLower(filename)
	if !strings.HasSuffix(lower, ".yml") && !strings.HasSuffix(lower, ".yaml") {
		return nil, fmt.Errorf("invalid file type: only .yml and .yaml files are allowed")
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	return ParseYAML(file)
}

func parseCamera(e entry) (*CameraDef, error) {
	if e.Width <= 0 || e.Height <= 0 {
		return nil, fmt.Errorf("camera needs a positive width and height")
	}
	from, err := toTuple(e.From, "from", 1)
	if err != nil {
		return nil, err
	}
	to, err := toTuple(e.To, "to", 1)
	if err != nil {
		return nil, err
	}
	up, err := toTuple(e.Up, "up", 0)
	if err != nil {
		return nil, err
	}
	// from == to, or up along the line of sight, leaves no orientation
	if !core.ViewTransform(from, to, up).Invertible() {
		return nil, fmt.Errorf("camera view transform is not invertible")
	}
	return &CameraDef{
		Width:       e.Width,
		Height:      e.Height,
		FieldOfView: e.FieldOfView,
		From:        from,
		To:          to,
		Up:          up,
	}, nil
}

func parseLight(e entry) (*LightDef, error) {
	at, err := toTuple(e.At, "at", 1)
	if err != nil {
		return nil, err
	}
	intensity, err := toColor(e.Intensity, "intensity")
	if err != nil {
		return nil, err
	}
	return &LightDef{At: at, Intensity: intensity}, nil
}

// parseShape builds a shape entry. "add" may name a primitive or a
// definition whose value is itself a shape entry; in the latter case the
// entry's own transform is applied after the definition's and its material,
// when given, replaces the definition's.
func (p *yamlParser) parseShape(e entry) (ShapeDef, error) {
	shape := ShapeDef{Transform: core.Identity()}

	if shapeTypes[e.Add] {
		shape.Type = e.Add
	} else if def, ok := p.defines[e.Add]; ok && def.value.Kind == yaml.MappingNode {
		if err := p.enter(); err != nil {
			return shape, err
		}
		defer p.leave()

		var base entry
		if err := def.value.Decode(&base); err != nil {
			return shape, fmt.Errorf("definition %q: %w", e.Add, err)
		}
		var err error
		if shape, err = p.parseShape(base); err != nil {
			return shape, fmt.Errorf("definition %q: %w", e.Add, err)
		}
	} else {
		return shape, fmt.Errorf("%w: %q", ErrUnknownShape, e.Add)
	}

	transform, err := p.resolveTransform(&e.Transform)
	if err != nil {
		return shape, err
	}
	shape.Transform = core.Chain(shape.Transform, transform)
	if !shape.Transform.Invertible() {
		return shape, fmt.Errorf("%s transform is not invertible", e.Add)
	}

	if e.Material.Kind != 0 {
		m := MaterialDef{}
		if err := p.resolveMaterial(&e.Material, &m); err != nil {
			return shape, err
		}
		shape.Material = m
	}

	if e.Min != nil {
		shape.Minimum = e.Min
	}
	if e.Max != nil {
		shape.Maximum = e.Max
	}
	if e.Closed {
		shape.Closed = true
	}

	for i, child := range e.Children {
		c, err := p.parseShape(child)
		if err != nil {
			return shape, fmt.Errorf("child %d: %w", i, err)
		}
		shape.Children = append(shape.Children, c)
	}
	if len(shape.Children) > 0 && shape.Type != "group" {
		return shape, fmt.Errorf("%s cannot have children", shape.Type)
	}

	return shape, nil
}

// resolveTransform multiplies out a transform list. Items are applied in
// order, so the first item is the innermost. An item is either an operation
// list such as [translate, 1, 2, 3] or the name of a transform definition.
func (p *yamlParser) resolveTransform(node *yaml.Node) (core.Matrix, error) {
	result := core.Identity()
	if node.Kind == 0 {
		return result, nil
	}
	if node.Kind != yaml.SequenceNode {
		return result, fmt.Errorf("line %d: transform must be a list", node.Line)
	}

	for _, item := range node.Content {
		var m core.Matrix
		var err error
		switch item.Kind {
		case yaml.ScalarNode:
			def, ok := p.defines[item.Value]
			if !ok {
				return result, fmt.Errorf("line %d: unknown transform definition %q", item.Line, item.Value)
			}
			m, err = p.definedTransform(def)
		case yaml.SequenceNode:
			m, err = parseOperation(item)
		default:
			err = fmt.Errorf("line %d: unexpected transform item", item.Line)
		}
		if err != nil {
			return result, err
		}
		result = core.Chain(result, m)
	}
	return result, nil
}

// definedTransform applies the extended definition's transforms before its own
func (p *yamlParser) definedTransform(def *definition) (core.Matrix, error) {
	if err := p.enter(); err != nil {
		return core.Matrix{}, err
	}
	defer p.leave()

	base := core.Identity()
	if def.parent != nil {
		var err error
		if base, err = p.definedTransform(def.parent); err != nil {
			return base, err
		}
	}

	own, err := p.resolveTransform(&def.value)
	if err != nil {
		return own, err
	}
	return core.Chain(base, own), nil
}

func (p *yamlParser) enter() error {
	p.depth++
	if p.depth > maxNesting {
		return fmt.Errorf("definitions nested more than %d deep", maxNesting)
	}
	return nil
}

func (p *yamlParser) leave() { p.depth-- }

func parseOperation(node *yaml.Node) (core.Matrix, error) {
	var op string
	var args []float64
	if len(node.Content) == 0 {
		return core.Matrix{}, fmt.Errorf("line %d: empty transform", node.Line)
	}
	if err := node.Content[0].Decode(&op); err != nil {
		return core.Matrix{}, fmt.Errorf("line %d: %w", node.Line, err)
	}
	for _, arg := range node.Content[1:] {
		var v float64
		if err := arg.Decode(&v); err != nil {
			return core.Matrix{}, fmt.Errorf("line %d: %s argument: %w", arg.Line, op, err)
		}
		args = append(args, v)
	}

	want := map[string]int{
		"translate": 3, "scale": 3, "shear": 6,
		"rotate-x": 1, "rotate-y": 1, "rotate-z": 1,
	}
	n, ok := want[op]
	if !ok {
		return core.Matrix{}, fmt.Errorf("line %d: unknown transform %q", node.Line, op)
	}
	if len(args) != n {
		return core.Matrix{}, fmt.Errorf("line %d: %s takes %d arguments, got %d", node.Line, op, n, len(args))
	}

	switch op {
	case "translate":
		return core.Translation(args[0], args[1], args[2]), nil
	case "scale":
		return core.Scaling(args[0], args[1], args[2]), nil
	case "shear":
		return core.Shearing(args[0], args[1], args[2], args[3], args[4], args[5]), nil
	case "rotate-x":
		return core.RotationX(args[0]), nil
	case "rotate-y":
		return core.RotationY(args[0]), nil
	default:
		return core.RotationZ(args[0]), nil
	}
}

// resolveMaterial applies a material node onto m. The node is either a
// mapping or the name of a material definition; definitions apply the
// material they extend first.
func (p *yamlParser) resolveMaterial(node *yaml.Node, m *MaterialDef) error {
	if node.Kind == yaml.ScalarNode {
		def, ok := p.defines[node.Value]
		if !ok {
			return fmt.Errorf("line %d: unknown material definition %q", node.Line, node.Value)
		}
		if err := p.definedMaterial(def, m); err != nil {
			return fmt.Errorf("definition %q: %w", node.Value, err)
		}
		return nil
	}

	var raw rawMaterial
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("line %d: invalid material: %w", node.Line, err)
	}

	if raw.Color != nil {
		c, err := toColor(raw.Color, "color")
		if err != nil {
			return err
		}
		m.Color = &c
	}
	setIfPresent(&m.Ambient, raw.Ambient)
	setIfPresent(&m.Diffuse, raw.Diffuse)
	setIfPresent(&m.Specular, raw.Specular)
	setIfPresent(&m.Shininess, raw.Shininess)
	setIfPresent(&m.Reflective, raw.Reflective)
	setIfPresent(&m.Transparency, raw.Transparency)
	setIfPresent(&m.RefractiveIndex, raw.RefractiveIndex)

	if raw.Pattern != nil {
		pattern, err := p.parsePattern(raw.Pattern)
		if err != nil {
			return err
		}
		m.Pattern = pattern
	}
	return nil
}

func (p *yamlParser) definedMaterial(def *definition, m *MaterialDef) error {
	if err := p.enter(); err != nil {
		return err
	}
	defer p.leave()

	if def.parent != nil {
		if err := p.definedMaterial(def.parent, m); err != nil {
			return err
		}
	}
	return p.resolveMaterial(&def.value, m)
}

func (p *yamlParser) parsePattern(raw *rawPattern) (*PatternDef, error) {
	pattern := &PatternDef{Type: raw.Type}

	switch raw.Type {
	case "stripes", "gradient", "rings", "checkers":
		if len(raw.Colors) != 2 {
			return nil, fmt.Errorf("%s pattern needs two colors", raw.Type)
		}
		for i, c := range raw.Colors {
			color, err := toColor(c, "pattern color")
			if err != nil {
				return nil, err
			}
			pattern.Colors[i] = color
		}
	case "test":
	default:
		return nil, fmt.Errorf("unknown pattern type %q", raw.Type)
	}

	transform, err := p.resolveTransform(&raw.Transform)
	if err != nil {
		return nil, err
	}
	if !transform.Invertible() {
		return nil, fmt.Errorf("%s pattern transform is not invertible", raw.Type)
	}
	pattern.Transform = transform
	return pattern, nil
}

func setIfPresent(dst **float64, src *float64) {
	if src != nil {
		v := *src
		*dst = &v
	}
}

func toTuple(v []float64, name string, w float64) (core.Tuple, error) {
	if len(v) != 3 {
		return core.Tuple{}, fmt.Errorf("%s needs 3 components, got %d", name, len(v))
	}
	return core.NewTuple(v[0], v[1], v[2], w), nil
}

func toColor(v []float64, name string) (core.Color, error) {
	if len(v) != 3 {
		return core.Color{}, fmt.Errorf("%s needs 3 components, got %d", name, len(v))
	}
	return core.NewColor(v[0], v[1], v[2]), nil
}
