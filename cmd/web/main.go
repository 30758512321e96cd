// @title           Job Portal API
// @version         1.0
// @description     Бэкенд джоб-портала: аккаунты, профили, компании.
// @host            localhost:8000
// @BasePath        /

package main

import "jobportal_backend/internal/app"

func main() {
	app.Run()
}
