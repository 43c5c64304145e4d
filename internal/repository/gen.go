package repository

import (
	"fmt"
	"os"

	"gorm.io/gen"

	"github.com/verebtamas/munkaido-hub/storage/database"
)

// UserQuerier generated lookup interface for users.
type UserQuerier interface {
	// GetByEmail looks a user up by login email
	// SELECT * FROM @@table WHERE email = @email LIMIT 1
	GetByEmail(email string) (*gen.T, error)

	// GetByPublicID looks a user up by its public snowflake ID
	// SELECT * FROM @@table WHERE public_id = @publicID LIMIT 1
	GetByPublicID(publicID int64) (*gen.T, error)
}

// WorkLogQuerier generated lookup interface for work logs.
type WorkLogQuerier interface {
	// GetByUserAndDate fetches the single entry for one date
	// SELECT * FROM @@table WHERE user_id = @userID AND date = @date::date LIMIT 1
	GetByUserAndDate(userID int64, date string) (*gen.T, error)

	// ListByUser lists entries newest first
	// SELECT * FROM @@table
	// WHERE user_id = @userID
	// ORDER BY date DESC
	// LIMIT @limit OFFSET @offset
	ListByUser(userID int64, limit, offset int) ([]*gen.T, error)

	// ListByUserAndRange lists entries in a date window, oldest first
	// SELECT * FROM @@table
	// WHERE user_id = @userID
	//   AND date >= @fromDate::date
	//   AND date <= @toDate::date
	// ORDER BY date ASC
	ListByUserAndRange(userID int64, fromDate, toDate string) ([]*gen.T, error)
}

// HolidayQuerier generated lookup interface for holiday reference data.
type HolidayQuerier interface {
	// ListByRange lists holidays in a date window, oldest first
	// SELECT * FROM @@table
	// WHERE date >= @fromDate::date AND date <= @toDate::date
	// ORDER BY date ASC
	ListByRange(fromDate, toDate string) ([]*gen.T, error)
}

func Generate() error {
	if err := database.Init(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	db := database.DB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:           "./internal/repository/query",
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface | gen.WithoutContext,
		FieldNullable:     true,
		FieldCoverable:    false,
		FieldSignable:     false,
		FieldWithIndexTag: false,
		FieldWithTypeTag:  true,
	})

	g.UseDB(db)

	userModel := g.GenerateModel("users")
	workLogModel := g.GenerateModel("work_logs")
	holidayModel := g.GenerateModel("hungarian_holidays")

	g.ApplyInterface(func(UserQuerier) {}, userModel)
	g.ApplyInterface(func(WorkLogQuerier) {}, workLogModel)
	g.ApplyInterface(func(HolidayQuerier) {}, holidayModel)

	g.Execute()

	return nil
}

func RunGenerate() {
	if err := Generate(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate code: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Code generation completed successfully!")
}
