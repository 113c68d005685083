package main

import (
	_ "zapshift/docs"
	"zapshift/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           ZapShift Parcel API
// @version         1.0
// @description     Parcel shipping backend (parcel CRUD + checkout and payment confirmation) backed by DynamoDB.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
