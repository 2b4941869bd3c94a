package sanitize

import (
	"encoding/json"
)

// UserData menghapus data sensitif user dari payload publik. password dibuang
// di semua kedalaman, email dibuang dari objek yang berbentuk user
// (punya id, name dan email), misalnya createdBy dan updatedBy.
func UserData(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	var tree any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, err
	}

	return strip(tree), nil
}

func strip(node any) any {
	switch n := node.(type) {
	case map[string]any:
		delete(n, "password")
		if isUserShape(n) {
			delete(n, "email")
		}
		for k, v := range n {
			n[k] = strip(v)
		}
		return n
	case []any:
		for i, v := range n {
			n[i] = strip(v)
		}
		return n
	default:
		return node
	}
}

func isUserShape(m map[string]any) bool {
	for _, key := range []string{"id", "name", "email"} {
		if _, ok := m[key]; !ok {
			return false
		}
	}
	return true
}
