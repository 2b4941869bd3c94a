package validation

// CustomMessage pesan khusus per field (nama field mengikuti tag json).
func CustomMessage(field string) map[string]string {
	var customValidationMessages = map[string]map[string]string{
		"email": {
			"required": "email tidak boleh kosong",
			"email":    "email tidak valid",
		},
		"password": {
			"required": "password tidak boleh kosong",
			"min":      "password minimal 8 karakter",
		},
		"name": {
			"required":    "nama tidak boleh kosong",
			"socialmedia": "name harus salah satu dari FACEBOOK, INSTAGRAM, LINKEDIN, TIKTOK, YOUTUBE",
		},
		"platform": {
			"required":    "platform tidak boleh kosong",
			"socialmedia": "platform harus salah satu dari FACEBOOK, INSTAGRAM, LINKEDIN, TIKTOK, YOUTUBE",
		},
		"status": {
			"newsstatus": "status harus salah satu dari draft, published, archived",
		},
		"categoryId": {
			"required": "categoryId tidak boleh kosong",
		},
		"postLink": {
			"url": "postLink harus berupa URL yang valid",
		},
		"order": {
			"required": "order tidak boleh kosong",
			"min":      "order minimal 1",
		},
		"limit": {
			"min": "limit minimal 1",
			"max": "limit maksimal 100",
		},
		"page": {
			"min": "page minimal 1",
		},
	}
	return customValidationMessages[field]
}
