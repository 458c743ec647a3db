package main

import (
	"log"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hrmslite.com/hrmslite/model"
)

func main() {
	dsn := os.Getenv("DSN") // "root:development@tcp(localhost:3306)/hrms?parseTime=true"
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		log.Fatalf("failed to connect: %v", err)
	}

	models := []interface{}{
		&model.Employee{},
		&model.Attendance{},
	}

	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			log.Fatalf("failed to migrate %T: %v", m, err)
		}
	}
}
