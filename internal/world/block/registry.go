package block

// BlockID представляет идентификатор блока
type BlockID uint16

// Metadata содержит дополнительное состояние размещения блока
type Metadata map[string]interface{}

// Info описывает зарегистрированный тип блока
type Info struct {
	ID   BlockID
	Name string
}

var registry = make(map[BlockID]Info)

// Register добавляет тип блока в регистр
func Register(id BlockID, name string) {
	registry[id] = Info{ID: id, Name: name}
}

// Get возвращает описание для указанного ID
func Get(id BlockID) (Info, bool) {
	info, exists := registry[id]
	return info, exists
}

// Name возвращает имя блока или "unknown" для незарегистрированного ID
func Name(id BlockID) string {
	if info, exists := registry[id]; exists {
		return info.Name
	}
	return "unknown"
}

// IsValidBlockID проверяет, является ли ID допустимым идентификатором блока
func IsValidBlockID(id BlockID) bool {
	_, exists := registry[id]
	return exists
}
