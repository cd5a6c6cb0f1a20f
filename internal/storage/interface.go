package storage

import "github.com/Mizuchii42/monster-toram/internal/boss"

type Emitter interface {
	Emit(group *boss.GroupedRecord) error
	Close() error
}
