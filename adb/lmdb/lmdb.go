package lmdb

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/virel-project/virel-runtime/adb"
	"github.com/virel-project/virel-runtime/logger"

	lmdb "github.com/PowerDNS/lmdb-go/lmdb"
)

var _ adb.DB = &DB{}

const MAX_DBS = 16
const INITIAL_MAP_SIZE = 1024 * 1024
const GB = 1024 * 1024 * 1024

type DB struct {
	env *lmdb.Env

	log *logger.Log

	resizeLock sync.Mutex
}

// New opens (or creates) the LMDB environment in the directory dbpath.
func New(dbpath string, filemode os.FileMode, log *logger.Log) (*DB, error) {
	var err error

	d := &DB{
		log: log,
	}

	d.env, err = lmdb.NewEnv()
	if err != nil {
		return nil, err
	}

	err = d.env.SetMaxDBs(MAX_DBS)
	if err != nil {
		d.env.Close()
		return nil, err
	}
	err = d.env.SetMapSize(INITIAL_MAP_SIZE)
	if err != nil {
		d.env.Close()
		return nil, err
	}

	dbpath, err = filepath.Abs(dbpath)
	if err != nil {
		d.env.Close()
		return nil, err
	}

	err = os.Mkdir(dbpath, filemode)
	if err != nil && !errors.Is(err, os.ErrExist) {
		d.env.Close()
		return nil, err
	}

	info, err := os.Stat(dbpath)
	if err != nil {
		d.env.Close()
		return nil, fmt.Errorf("directory access error: %w", err)
	}
	if !info.IsDir() {
		d.env.Close()
		return nil, fmt.Errorf("%s is not a directory", dbpath)
	}

	err = d.env.Open(dbpath, lmdb.NoMetaSync, filemode)
	if err != nil {
		d.env.Close()
		return nil, err
	}

	return d, nil
}

func (d *DB) Index(name string) (dbi adb.Index) {
	err := d.env.Update(func(txn *lmdb.Txn) error {
		var err error
		dbi, err = txn.CreateDBI(name)
		return err
	})
	if err != nil {
		panic(err)
	}

	return
}

func (d *DB) View(f func(txn adb.Txn) error) error {
	return d.env.View(func(t *lmdb.Txn) error {
		return f(&Txn{txn: t})
	})
}

// grow doubles the map size (at most +1 GiB) when less than 10% is free.
func (d *DB) grow() error {
	info, err := d.env.Info()
	if err != nil {
		return err
	}

	stat, err := d.env.Stat()
	if err != nil {
		return err
	}

	used := int64(stat.PSize) * info.LastPNO
	free := 1 - float64(used)/float64(info.MapSize)
	if free >= 0.1 {
		return nil
	}

	d.resizeLock.Lock()
	defer d.resizeLock.Unlock()

	newSize := info.MapSize * 2
	if info.MapSize > GB {
		newSize = info.MapSize + GB
	}

	d.log.Infof("LMDB mapsize increase needed: %vMiB -> %vMiB", float64(info.MapSize)/1024/1024,
		float64(newSize)/1024/1024)

	return d.env.SetMapSize(newSize)
}

func (d *DB) Update(f func(txn adb.Txn) error) error {
	err := d.grow()
	if err != nil {
		return err
	}

	return d.env.Update(func(t *lmdb.Txn) error {
		return f(&Txn{txn: t})
	})
}

func (d *DB) Close() error {
	return d.env.Close()
}

type Txn struct {
	txn *lmdb.Txn
}

func (t *Txn) Get(d adb.Index, key []byte) []byte {
	r, err := t.txn.Get(d.(lmdb.DBI), key)
	if err != nil {
		return nil
	}
	return r
}

func (t *Txn) Put(d adb.Index, key []byte, value []byte) error {
	return t.txn.Put(d.(lmdb.DBI), key, value, 0)
}

func (t *Txn) Del(d adb.Index, key []byte) error {
	err := t.txn.Del(d.(lmdb.DBI), key, nil)
	if lmdb.IsNotFound(err) {
		return nil
	}
	return err
}

func (t *Txn) ForEach(d adb.Index, f func(k, v []byte) error) error {
	cursor, err := t.txn.OpenCursor(d.(lmdb.DBI))
	if err != nil {
		return err
	}
	defer cursor.Close()

	for {
		key, value, err := cursor.Get(nil, nil, lmdb.Next)
		if lmdb.IsNotFound(err) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("cursor get: %w", err)
		}

		err = f(key, value)
		if err != nil {
			return err
		}
	}
}

func (t *Txn) Entries(d adb.Index) (uint64, error) {
	stat, err := t.txn.Stat(d.(lmdb.DBI))
	if err != nil {
		return 0, err
	}
	return stat.Entries, nil
}
