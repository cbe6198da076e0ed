package nlp

type EmotionLabel string

const (
	EmotionMarah  EmotionLabel = "Marah"
	EmotionSedih  EmotionLabel = "Sedih"
	EmotionSenang EmotionLabel = "Senang"
	EmotionLapar  EmotionLabel = "Lapar"
	EmotionStress EmotionLabel = "Stress"
	EmotionNetral EmotionLabel = "Netral"
)

type ExpenseCategory string

const (
	CategoryMakananMinuman ExpenseCategory = "Makanan & Minuman"
	CategoryTransport      ExpenseCategory = "Transport"
	CategoryFashion        ExpenseCategory = "Fashion"
	CategoryHiburan        ExpenseCategory = "Hiburan"
	CategoryBelanja        ExpenseCategory = "Belanja"
	CategoryTagihan        ExpenseCategory = "Tagihan"
	CategoryLainnya        ExpenseCategory = "Lainnya"
)

// ExpenseExtraction is one validated transaction pulled out of an informal
// message. Amount is whole Rupiah.
type ExpenseExtraction struct {
	ItemName       string          `json:"item_name"`
	Amount         int             `json:"amount"`
	Category       ExpenseCategory `json:"category"`
	Emotion        EmotionLabel    `json:"emotion"`
	SentimentScore float64         `json:"sentiment_score"`
	AIConfidence   float64         `json:"ai_confidence"`
}

type ReceiptItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int    `json:"price"`
}

type ReceiptData struct {
	StoreName   string        `json:"store_name"`
	TotalAmount int           `json:"total_amount"`
	Date        string        `json:"date,omitempty"`
	Items       []ReceiptItem `json:"items"`
	RawText     string        `json:"raw_text,omitempty"`
}
