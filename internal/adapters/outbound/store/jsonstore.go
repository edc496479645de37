package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/orderdesk/orderdesk/internal/domain"
)

// FileStore implements domain.Store using a single JSON data file.
// Writes are staged in a transaction and reach the file only on Commit,
// via a temp-file rename.
type FileStore struct {
	path string
}

func New(path string) *FileStore {
	return &FileStore{path: path}
}

// fileData is the on-disk layout of the store.
type fileData struct {
	Customers []domain.Customer `json:"customers"`
	Products  []*domain.Product `json:"products"`
	Orders    []*domain.Order   `json:"orders"`
}

func (s *FileStore) load() (*fileData, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no data file at %s (run \"orderdesk init\" first): %w", s.path, err)
		}
		return nil, err
	}
	var data fileData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.path, err)
	}
	return &data, nil
}

func (s *FileStore) LoadCustomers() ([]domain.Customer, error) {
	data, err := s.load()
	if err != nil {
		return nil, err
	}
	return data.Customers, nil
}

func (s *FileStore) LoadProducts() ([]*domain.Product, error) {
	data, err := s.load()
	if err != nil {
		return nil, err
	}
	return data.Products, nil
}

// Begin snapshots the current data file and opens a transaction whose
// staged saves become visible only on Commit.
func (s *FileStore) Begin() (domain.Tx, error) {
	data, err := s.load()
	if err != nil {
		return nil, err
	}
	return &fileTx{store: s, data: data}, nil
}

type fileTx struct {
	store *FileStore
	data  *fileData
	done  bool
}

func (tx *fileTx) SaveOrder(o *domain.Order) error {
	if tx.done {
		return fmt.Errorf("transaction already closed")
	}
	tx.data.Orders = append(tx.data.Orders, o)
	return nil
}

// SaveProducts replaces stored product records with the given ones,
// matching by UPC. Unknown UPCs are appended.
func (tx *fileTx) SaveProducts(products []*domain.Product) error {
	if tx.done {
		return fmt.Errorf("transaction already closed")
	}
	byUPC := make(map[string]int, len(tx.data.Products))
	for i, p := range tx.data.Products {
		byUPC[p.UPC] = i
	}
	for _, p := range products {
		if i, ok := byUPC[p.UPC]; ok {
			tx.data.Products[i] = p
		} else {
			tx.data.Products = append(tx.data.Products, p)
		}
	}
	return nil
}

// Commit writes the staged data to a temp file and renames it over the
// data file, so a failed write never leaves a partial commit behind.
func (tx *fileTx) Commit() error {
	if tx.done {
		return fmt.Errorf("transaction already closed")
	}
	tx.done = true

	raw, err := json.MarshalIndent(tx.data, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(tx.store.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".orders-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), tx.store.path)
}

// Rollback discards everything staged.
func (tx *fileTx) Rollback() error {
	tx.done = true
	return nil
}
