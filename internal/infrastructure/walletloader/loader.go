package walletloader

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"starknet_balance_checker/internal/pkg/utils"
)

// DefaultWalletFilePath is used when no wallet file is given.
const DefaultWalletFilePath = "data/wallets.txt"

// LoadWallets reads Starknet wallet addresses, one per line. Blank lines and
// lines starting with # are ignored; malformed addresses are reported through
// warn and skipped. Duplicates keep their first position.
func LoadWallets(filePath string, warn func(msg string, args ...any)) ([]string, error) {
	if filePath == "" {
		filePath = DefaultWalletFilePath
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open wallet file %s: %w", filePath, err)
	}
	defer file.Close()

	var wallets []string
	seen := make(map[string]struct{})
	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !utils.IsValidAddress(line) {
			if warn != nil {
				warn("Skipping invalid wallet address format", "file", filePath, "line_number", lineNum, "address", line)
			}
			continue
		}
		key := strings.ToLower(line)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		wallets = append(wallets, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning wallet file %s: %w", filePath, err)
	}
	return wallets, nil
}
