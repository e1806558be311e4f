package scene

import (
	"errors"

	"tridemo/internal/render"
)

var errDevice = errors.New("device unavailable")

type fakeSurface struct{ size render.Size }

func (f *fakeSurface) ClientSize() render.Size { return f.size }

type fakeFactory struct {
	targetCalls    int
	failTargets    int // remaining CreateTarget calls that fail
	failBrushes    int
	failGeometry   bool
	endDrawErrs    []error // consumed one per EndDraw
	targets        []*fakeTarget
	geometries     []*fakeGeometry
	closed         bool
	liveTargets    int
	liveBrushes    int
	liveGeometries int
}

func (f *fakeFactory) CreateTarget(size render.Size) (render.Target, error) {
	f.targetCalls++
	if err := render.CheckSize(size); err != nil {
		return nil, err
	}
	if f.failTargets > 0 {
		f.failTargets--
		return nil, errDevice
	}
	t := &fakeTarget{f: f, size: size}
	f.targets = append(f.targets, t)
	f.liveTargets++
	return t, nil
}

func (f *fakeFactory) CreatePathGeometry(points []render.Point) (render.Geometry, error) {
	if f.failGeometry {
		return nil, errDevice
	}
	if err := render.CheckContour(points); err != nil {
		return nil, err
	}
	g := &fakeGeometry{f: f, points: append([]render.Point(nil), points...)}
	f.geometries = append(f.geometries, g)
	f.liveGeometries++
	return g, nil
}

func (f *fakeFactory) Close() error {
	f.closed = true
	return nil
}

func (f *fakeFactory) lastTarget() *fakeTarget {
	if len(f.targets) == 0 {
		return nil
	}
	return f.targets[len(f.targets)-1]
}

type drawCall struct {
	transform render.Matrix
	points    []render.Point
	color     render.Color
	fill      bool
}

type fakeTarget struct {
	f       *fakeFactory
	size    render.Size
	closed  bool
	drawing bool
	frames  int
	clears  []render.Color
	xf      render.Matrix
	draws   []drawCall
}

func (t *fakeTarget) Size() render.Size { return t.size }

func (t *fakeTarget) CreateSolidBrush(c render.Color) (render.Brush, error) {
	if t.f.failBrushes > 0 {
		t.f.failBrushes--
		return nil, errDevice
	}
	t.f.liveBrushes++
	return &fakeBrush{f: t.f, c: c}, nil
}

func (t *fakeTarget) BeginDraw() {
	t.drawing = true
	t.clears = nil
	t.draws = nil
	t.xf = render.Identity()
}

func (t *fakeTarget) Clear(c render.Color) { t.clears = append(t.clears, c) }

func (t *fakeTarget) SetTransform(m render.Matrix) { t.xf = m }

func (t *fakeTarget) FillGeometry(g render.Geometry, b render.Brush) {
	t.draws = append(t.draws, drawCall{transform: t.xf, points: g.Points(), color: b.Color(), fill: true})
}

func (t *fakeTarget) DrawGeometry(g render.Geometry, b render.Brush, _ float32) {
	t.draws = append(t.draws, drawCall{transform: t.xf, points: g.Points(), color: b.Color()})
}

func (t *fakeTarget) EndDraw() error {
	t.drawing = false
	t.frames++
	if len(t.f.endDrawErrs) > 0 {
		err := t.f.endDrawErrs[0]
		t.f.endDrawErrs = t.f.endDrawErrs[1:]
		return err
	}
	return nil
}

func (t *fakeTarget) Close() error {
	if !t.closed {
		t.closed = true
		t.f.liveTargets--
	}
	return nil
}

type fakeBrush struct {
	f      *fakeFactory
	c      render.Color
	closed bool
}

func (b *fakeBrush) Color() render.Color { return b.c }

func (b *fakeBrush) Close() error {
	if !b.closed {
		b.closed = true
		b.f.liveBrushes--
	}
	return nil
}

type fakeGeometry struct {
	f      *fakeFactory
	points []render.Point
	closed bool
}

func (g *fakeGeometry) Points() []render.Point { return g.points }

func (g *fakeGeometry) Close() error {
	if !g.closed {
		g.closed = true
		g.f.liveGeometries--
	}
	return nil
}
