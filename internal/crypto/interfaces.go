package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/field_cipher_mock.go -package=mock

// FieldCipher защищает персональные поля (TC, IBAN) при хранении.
//
// Схема работы:
//
//	stored = Encrypt(plain)     "iv_hex:ciphertext_hex", новый IV на каждый вызов
//	plain  = Decrypt(stored)    ошибка при неверном формате, ключе или подмене
//	lookup = HashTC(plain)      детерминированный ключ поиска, без расшифровки
//
// Шифртекст недетерминирован, поэтому искать по нему нельзя: для поиска
// владельца или арендатора по TC используется только HashTC.
type FieldCipher interface {
	// Encrypt шифрует plaintext через AES-256-GCM со свежим 96-битным IV.
	Encrypt(plaintext string) (string, error)

	// Decrypt расшифровывает строку формата "iv_hex:ciphertext_hex".
	// Возвращает ErrDecryption, если формат неверен или тег не сошёлся.
	Decrypt(ciphertext string) (string, error)

	// HashTC возвращает hex HMAC-SHA256 от номера TC. Одинаковый вход всегда
	// даёт одинаковый хеш при одном и том же ключе.
	HashTC(tc string) string
}
