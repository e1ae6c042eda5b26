// Package storage keeps the desired-state documents: interface
// configurations, the append-only NAT configuration history, firewall rules
// and audit records. Documents are JSON-encoded in badger under the
// namespaces declared in the constants package.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/routeforge/netagent/internal/constants"
	"github.com/routeforge/netagent/internal/errs"
	"github.com/routeforge/netagent/internal/objects/bo"
)

type Store struct {
	db *badger.DB
}

func NewStore(db *badger.DB) *Store {
	return &Store{
		db: db,
	}
}

// Interface configurations. One record per interface name.

func (s *Store) PutInterfaceConfig(cfg bo.InterfaceConfig) (err error) {
	if err = s.put(constants.StoreKeyInterfaceConfig+cfg.Name, cfg); err != nil {
		return fmt.Errorf("PutInterfaceConfig: %w", err)
	}

	return nil
}

func (s *Store) GetInterfaceConfig(name string) (cfg bo.InterfaceConfig, err error) {
	if err = s.get(constants.StoreKeyInterfaceConfig+name, &cfg); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return cfg, fmt.Errorf("GetInterfaceConfig: %q: %w", name, errs.ErrInterfaceNotFound)
		}

		return cfg, fmt.Errorf("GetInterfaceConfig: %w", err)
	}

	return cfg, nil
}

func (s *Store) DeleteInterfaceConfig(name string) (err error) {
	if err = s.delete(constants.StoreKeyInterfaceConfig + name); err != nil {
		return fmt.Errorf("DeleteInterfaceConfig: %w", err)
	}

	return nil
}

func (s *Store) ListInterfaceConfigs() (configs []bo.InterfaceConfig, err error) {
	err = s.scan(constants.StoreKeyInterfaceConfig, func(value []byte) error {
		var cfg bo.InterfaceConfig
		if err := json.Unmarshal(value, &cfg); err != nil {
			return err
		}

		configs = append(configs, cfg)

		return nil
	})
	if err != nil {
		return configs, fmt.Errorf("ListInterfaceConfigs: %w", err)
	}

	return configs, nil
}

// NAT configurations. Append-only: every save creates a new record under a
// time-ordered key and the current configuration is the most recent record.

func (s *Store) AppendNATConfig(cfg bo.NATConfig) (err error) {
	key := fmt.Sprintf("%s%020d", constants.StoreKeyNATConfig, cfg.CreatedAt.UnixNano())
	if err = s.put(key, cfg); err != nil {
		return fmt.Errorf("AppendNATConfig: %w", err)
	}

	return nil
}

func (s *Store) LatestNATConfig() (cfg bo.NATConfig, err error) {
	found := false
	err = s.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		options.Prefix = []byte(constants.StoreKeyNATConfig)

		it := txn.NewIterator(options)
		defer it.Close()

		// seek past the end of the namespace, the first hit is the latest
		it.Seek([]byte(constants.StoreKeyNATConfig + "\xff"))
		if !it.ValidForPrefix([]byte(constants.StoreKeyNATConfig)) {
			return nil
		}

		found = true

		return it.Item().Value(func(value []byte) error {
			return json.Unmarshal(value, &cfg)
		})
	})
	if err != nil {
		return cfg, fmt.Errorf("LatestNATConfig: %w", err)
	}

	if !found {
		return cfg, fmt.Errorf("LatestNATConfig: %w", errs.ErrNATNotConfigured)
	}

	return cfg, nil
}

func (s *Store) ListNATConfigs() (configs []bo.NATConfig, err error) {
	err = s.scan(constants.StoreKeyNATConfig, func(value []byte) error {
		var cfg bo.NATConfig
		if err := json.Unmarshal(value, &cfg); err != nil {
			return err
		}

		configs = append(configs, cfg)

		return nil
	})
	if err != nil {
		return configs, fmt.Errorf("ListNATConfigs: %w", err)
	}

	return configs, nil
}

// Firewall rules. One record per rule name.

func (s *Store) PutFirewallRule(rule bo.FirewallRule) (err error) {
	if err = s.put(constants.StoreKeyFirewallRule+rule.RuleName, rule); err != nil {
		return fmt.Errorf("PutFirewallRule: %w", err)
	}

	return nil
}

func (s *Store) GetFirewallRule(ruleName string) (rule bo.FirewallRule, err error) {
	if err = s.get(constants.StoreKeyFirewallRule+ruleName, &rule); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return rule, fmt.Errorf("GetFirewallRule: %q: %w", ruleName, errs.ErrRuleNotFound)
		}

		return rule, fmt.Errorf("GetFirewallRule: %w", err)
	}

	return rule, nil
}

func (s *Store) DeleteFirewallRule(ruleName string) (err error) {
	if err = s.delete(constants.StoreKeyFirewallRule + ruleName); err != nil {
		return fmt.Errorf("DeleteFirewallRule: %w", err)
	}

	return nil
}

func (s *Store) ListFirewallRules() (rules bo.FirewallRules, err error) {
	err = s.scan(constants.StoreKeyFirewallRule, func(value []byte) error {
		var rule bo.FirewallRule
		if err := json.Unmarshal(value, &rule); err != nil {
			return err
		}

		rules = append(rules, rule)

		return nil
	})
	if err != nil {
		return rules, fmt.Errorf("ListFirewallRules: %w", err)
	}

	return rules, nil
}

// Audit records.

func (s *Store) AppendAuditRecord(record bo.AuditRecord) (err error) {
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now().UTC()
	}

	key := fmt.Sprintf("%s%020d", constants.StoreKeyAuditRecord, record.Timestamp.UnixNano())
	if err = s.put(key, record); err != nil {
		return fmt.Errorf("AppendAuditRecord: %w", err)
	}

	return nil
}

func (s *Store) ListAuditRecords() (records []bo.AuditRecord, err error) {
	err = s.scan(constants.StoreKeyAuditRecord, func(value []byte) error {
		var record bo.AuditRecord
		if err := json.Unmarshal(value, &record); err != nil {
			return err
		}

		records = append(records, record)

		return nil
	})
	if err != nil {
		return records, fmt.Errorf("ListAuditRecords: %w", err)
	}

	return records, nil
}

func (s *Store) put(key string, document any) (err error) {
	data, err := json.Marshal(document)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

func (s *Store) get(key string, document any) (err error) {
	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}

		return item.Value(func(value []byte) error {
			return json.Unmarshal(value, document)
		})
	})
}

func (s *Store) delete(key string) (err error) {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

func (s *Store) scan(prefix string, visit func(value []byte) error) (err error) {
	return s.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Prefix = []byte(prefix)

		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
			if err := it.Item().Value(visit); err != nil {
				return err
			}
		}

		return nil
	})
}
