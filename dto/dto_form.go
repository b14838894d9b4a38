package dto

// FormUploadDTO carries the multipart metadata fields accompanying a
// PDF upload (the file itself arrives as the "file" part).
type FormUploadDTO struct {
	TitleTh  string `form:"title_th"`
	TitleEn  string `form:"title_en"`
	TitleJa  string `form:"title_ja"`
	TitleZh  string `form:"title_zh"`
	Category string `form:"category"`
}
