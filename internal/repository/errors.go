package repository

import "errors"

// 見つからない
var ErrNotFound = errors.New("not found")

// 一意制約違反（23505）
var ErrDuplicate = errors.New("duplicate key")
