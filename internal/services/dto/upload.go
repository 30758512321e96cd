package dto

import "io"

// UploadInput — бинарник одного запроса: живет, пока обрабатывается
// запрос, в БД попадает только URL из хранилища.
type UploadInput struct {
	FileName    string
	ContentType string
	Size        int64
	Reader      io.Reader
}
