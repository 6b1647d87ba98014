package osm

import (
	"encoding/json"

	"github.com/annel0/osm-worldgen/internal/vec"
)

// Node представляет узел контура с проецированными координатами мира.
// Теги разделяются всеми узлами элемента-владельца.
type Node struct {
	ID   int64             `json:"id"`
	X    int               `json:"x"`
	Z    int               `json:"z"`
	Tags map[string]string `json:"tags,omitempty"`
}

// XZ возвращает колонку мира узла
func (n *Node) XZ() vec.Vec2 {
	return vec.Vec2{X: n.X, Z: n.Z}
}

// Way представляет замкнутый контур (footprint) с общим набором тегов.
// Контур считается неявно замкнутым; ядро генерации его не мутирует.
type Way struct {
	ID    int64             `json:"id"`
	Nodes []Node            `json:"nodes"`
	Tags  map[string]string `json:"tags,omitempty"`
}

// Tag возвращает значение тега; отсутствие ключа — штатная ситуация
func (w *Way) Tag(key string) (string, bool) {
	value, ok := w.Tags[key]
	return value, ok
}

// HasTag проверяет наличие тега
func (w *Way) HasTag(key string) bool {
	_, ok := w.Tags[key]
	return ok
}

// Columns возвращает колонки всех узлов контура
func (w *Way) Columns() []vec.Vec2 {
	columns := make([]vec.Vec2, len(w.Nodes))
	for i := range w.Nodes {
		columns[i] = w.Nodes[i].XZ()
	}
	return columns
}

// MemberRole определяет роль участника отношения
type MemberRole int

const (
	RoleOuter MemberRole = iota
	RoleInner
	RoleOther
)

// ParseMemberRole разбирает текстовую роль участника
func ParseMemberRole(role string) MemberRole {
	switch role {
	case "outer":
		return RoleOuter
	case "inner":
		return RoleInner
	default:
		return RoleOther
	}
}

// String возвращает текстовую роль участника
func (r MemberRole) String() string {
	switch r {
	case RoleOuter:
		return "outer"
	case RoleInner:
		return "inner"
	default:
		return "other"
	}
}

// MarshalJSON сериализует роль в текстовом виде
func (r MemberRole) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON разбирает текстовую роль
func (r *MemberRole) UnmarshalJSON(data []byte) error {
	var role string
	if err := json.Unmarshal(data, &role); err != nil {
		return err
	}
	*r = ParseMemberRole(role)
	return nil
}

// Member представляет участника отношения
type Member struct {
	Role MemberRole `json:"role"`
	Way  Way        `json:"way"`
}

// Relation представляет именованную группу контуров с собственными тегами
type Relation struct {
	ID      int64             `json:"id"`
	Tags    map[string]string `json:"tags,omitempty"`
	Members []Member          `json:"members"`
}

// Tag возвращает значение тега отношения
func (r *Relation) Tag(key string) (string, bool) {
	value, ok := r.Tags[key]
	return value, ok
}
