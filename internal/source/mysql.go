package source

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"chatrender/internal/model"
)

// CreateTableSQL is the schema MySQL reads from
const CreateTableSQL = `
CREATE TABLE IF NOT EXISTS chat_messages (
	id INT PRIMARY KEY,
	source VARCHAR(32) NOT NULL,
	type VARCHAR(32) NOT NULL,
	user_id INT NULL,
	avatar VARCHAR(2048) NULL,
	text TEXT NULL,
	image_url VARCHAR(2048) NULL
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`

// MySQL reads messages from the chat_messages table. It never writes.
type MySQL struct {
	DB *sql.DB
}

// Messages returns every row ordered by id. Rows that fail to scan are
// logged and skipped.
func (s *MySQL) Messages(ctx context.Context) ([]model.Message, error) {
	rows, err := s.DB.QueryContext(ctx,
		"SELECT id, source, type, user_id, avatar, text, image_url FROM chat_messages ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	messages := []model.Message{}
	for rows.Next() {
		var (
			rec                    model.Record
			src, typ               string
			userID                 sql.NullInt64
			avatar, text, imageURL sql.NullString
		)
		if err := rows.Scan(&rec.ID, &src, &typ, &userID, &avatar, &text, &imageURL); err != nil {
			log.Printf("[source/mysql] ❌ Scan error: %v", err)
			continue
		}

		rec.Source = model.Source(src)
		rec.Type = model.Type(typ)
		rec.UserID = int(userID.Int64)
		rec.Avatar = avatar.String
		rec.Text = text.String
		rec.ImageURL = imageURL.String

		messages = append(messages, rec.Message())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate messages: %w", err)
	}

	return messages, nil
}
