package schema

var schema = []string{
	`CREATE TABLE notes (
		id BIGINT PRIMARY KEY AUTO_INCREMENT,
		owner_id BIGINT NOT NULL,
		title VARCHAR(200) NOT NULL,
		description TEXT,
		color VARCHAR(50),
		image VARCHAR(255),
		reminder TIMESTAMP,
		is_archive TINYINT NOT NULL,
		is_trash TINYINT NOT NULL,
		updated_at TIMESTAMP,
		created_at TIMESTAMP
	)`,
	`CREATE TABLE labels (
		id BIGINT PRIMARY KEY AUTO_INCREMENT,
		owner_id BIGINT NOT NULL,
		name VARCHAR(100) NOT NULL,
		updated_at TIMESTAMP,
		created_at TIMESTAMP
	)`,
}

var dropSchema = []string{
	`DROP TABLE labels`,
	`DROP TABLE notes`,
}
