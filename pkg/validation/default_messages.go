package validation

import (
	"fmt"
)

func DefaultMessage(field, tag, param string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s tidak boleh kosong", field)
	case "email":
		return fmt.Sprintf("%s harus berupa alamat email yang valid", field)
	case "numeric", "number":
		return fmt.Sprintf("%s harus berupa angka", field)
	case "min":
		return fmt.Sprintf("%s minimal %s", field, param)
	case "max":
		return fmt.Sprintf("%s maksimal %s", field, param)
	case "len":
		return fmt.Sprintf("%s harus memiliki panjang %s", field, param)
	case "gte":
		return fmt.Sprintf("%s harus lebih besar atau sama dengan %s", field, param)
	case "gt":
		return fmt.Sprintf("%s harus lebih besar dari %s", field, param)
	case "lte":
		return fmt.Sprintf("%s harus lebih kecil atau sama dengan %s", field, param)
	case "lt":
		return fmt.Sprintf("%s harus lebih kecil dari %s", field, param)
	case "url":
		return fmt.Sprintf("%s harus berupa URL yang valid", field)
	case "uuid":
		return fmt.Sprintf("%s harus berupa UUID yang valid", field)
	case "boolean":
		return fmt.Sprintf("%s harus bernilai true atau false", field)
	case "datetime":
		return fmt.Sprintf("%s harus berupa tanggal/waktu dengan format valid", field)
	case "oneof":
		return fmt.Sprintf("%s harus salah satu dari: %s", field, param)
	case "dive":
		return fmt.Sprintf("%s berisi nilai yang tidak valid", field)
	case "unique":
		return fmt.Sprintf("%s tidak boleh berisi nilai duplikat", field)
	case "socialmedia":
		return fmt.Sprintf("%s bukan platform media sosial yang didukung", field)
	case "newsstatus":
		return fmt.Sprintf("%s bukan status berita yang valid", field)
	default:
		return fmt.Sprintf("%s tidak valid", field)
	}
}
