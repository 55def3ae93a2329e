package geometry

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/georgi-kanchev/TransformableHitbox2D/dbg"
)

// Debug stringers. The names are random but stable per pointer within a run;
// see the dbg package.

func (t *Transform) String() string {
	position := t.Position()
	return fmt.Sprintf("Transform %s <pos: (%.2f, %.2f), angle: %.2f, scale: %.2f, parent: %s, children: %d>",
		t.DbgName(),
		position.X, position.Y,
		t.Angle(),
		t.Scale(),
		dbg.Name(t.parent),
		len(t.children),
	)
}

func (t *Transform) DbgName() string {
	// Roots are green so hierarchies are easy to scan in dumps
	name := dbg.Name(t)
	if t.parent == nil {
		name = aurora.Green(name).String()
	}
	return name
}

func (hb *Hitbox) String() string {
	lines := make([]string, len(hb.Lines))
	for i, s := range hb.Lines {
		lines[i] = fmt.Sprintf("(%.2f, %.2f)-(%.2f, %.2f)", s.A.X, s.A.Y, s.B.X, s.B.Y)
	}
	return fmt.Sprintf("Hitbox %s [%s]", dbg.Name(hb), strings.Join(lines, " "))
}
