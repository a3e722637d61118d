package objects

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GameObject is the highest level interface for game related types.
type GameObject interface {
	Lifecycle

	GetID() string
	GetZIndex() int
	GetChildren() []GameObject
}

// BaseObject implements GameObject with no behaviour of its own. Children
// are kept sorted by z-index so they draw back to front.
type BaseObject struct {
	id       string
	zIndex   int
	children []GameObject
}

type NewBaseObjectOpts struct {
	ZIndex int
}

var _ GameObject = &BaseObject{}

func NewBaseObject(id string, opts *NewBaseObjectOpts) *BaseObject {
	o := &BaseObject{
		id: id,
	}
	if opts != nil {
		o.zIndex = opts.ZIndex
	}
	return o
}

func (o *BaseObject) GetID() string {
	return o.id
}

func (o *BaseObject) GetZIndex() int {
	return o.zIndex
}

func (o *BaseObject) GetChildren() []GameObject {
	return o.children
}

// AddChild inserts child after every child with the same or lower z-index.
func (o *BaseObject) AddChild(child GameObject) {
	for i, obj := range o.children {
		if obj.GetZIndex() > child.GetZIndex() {
			o.children = append(o.children[:i], append([]GameObject{child}, o.children[i:]...)...)
			return
		}
	}
	o.children = append(o.children, child)
}

func (o *BaseObject) Init() error               { return nil }
func (o *BaseObject) Destroy() error            { return nil }
func (o *BaseObject) Update() error             { return nil }
func (o *BaseObject) Draw(screen *ebiten.Image) {}

// InitTree initializes obj and then its children.
func InitTree(obj GameObject) error {
	if err := obj.Init(); err != nil {
		return err
	}
	for _, child := range obj.GetChildren() {
		if err := InitTree(child); err != nil {
			return err
		}
	}
	return nil
}

// DestroyTree destroys the children of obj and then obj.
func DestroyTree(obj GameObject) error {
	for _, child := range obj.GetChildren() {
		if err := DestroyTree(child); err != nil {
			return err
		}
	}
	return obj.Destroy()
}

func UpdateTree(obj GameObject) error {
	if err := obj.Update(); err != nil {
		return err
	}
	for _, child := range obj.GetChildren() {
		if err := UpdateTree(child); err != nil {
			return err
		}
	}
	return nil
}

func DrawTree(obj GameObject, screen *ebiten.Image) {
	obj.Draw(screen)
	for _, child := range obj.GetChildren() {
		DrawTree(child, screen)
	}
}
