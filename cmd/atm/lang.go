package main

// stringTable holds the localized text for one display language. The terminal
// client renders everything; the core services only signal conditions.
type stringTable struct {
	Username            string
	Pin                 string
	Login               string
	Register            string
	Menu                string
	CheckBalance        string
	DepositMoney        string
	WithdrawMoney       string
	TransactionHistory  string
	ViewSeries          string
	Exit                string
	Success             string
	Error               string
	InvalidCredentials  string
	RegistrationSuccess string
	UsernameExists      string
	Balance             string
	DepositPrompt       string
	WithdrawPrompt      string
	InvalidAmount       string
	InsufficientFunds   string
	NoTransactions      string
	SelectLanguage      string
}

var languages = map[string]stringTable{
	"English": {
		Username:            "Username:",
		Pin:                 "PIN:",
		Login:               "Login",
		Register:            "Register",
		Menu:                "ATM Menu",
		CheckBalance:        "Check Balance",
		DepositMoney:        "Deposit Money",
		WithdrawMoney:       "Withdraw Money",
		TransactionHistory:  "View Transaction History",
		ViewSeries:          "View Transaction Graph",
		Exit:                "Exit",
		Success:             "Success",
		Error:               "Error",
		InvalidCredentials:  "Invalid credentials.",
		RegistrationSuccess: "Registration successful!",
		UsernameExists:      "Username already exists.",
		Balance:             "Your current balance is: $",
		DepositPrompt:       "Enter amount to deposit:",
		WithdrawPrompt:      "Enter amount to withdraw:",
		InvalidAmount:       "Invalid amount.",
		InsufficientFunds:   "Insufficient funds.",
		NoTransactions:      "No transactions found.",
		SelectLanguage:      "Select Language:",
	},
	"Arabic": {
		Username:            "اسم المستخدم:",
		Pin:                 "الرقم السري:",
		Login:               "تسجيل الدخول",
		Register:            "تسجيل",
		Menu:                "قائمة الصراف الآلي",
		CheckBalance:        "التحقق من الرصيد",
		DepositMoney:        "إيداع",
		WithdrawMoney:       "سحب",
		TransactionHistory:  "عرض سجل المعاملات",
		ViewSeries:          "عرض الرسم البياني للمعاملات",
		Exit:                "خروج",
		Success:             "تمت العملية بنجاح",
		Error:               "خطأ",
		InvalidCredentials:  "بيانات غير صحيحة.",
		RegistrationSuccess: "تم التسجيل بنجاح!",
		UsernameExists:      "اسم المستخدم موجود بالفعل.",
		Balance:             "رصيدك الحالي هو: $",
		DepositPrompt:       "أدخل المبلغ للإيداع:",
		WithdrawPrompt:      "أدخل المبلغ للسحب:",
		InvalidAmount:       "مبلغ غير صالح.",
		InsufficientFunds:   "الرصيد غير كافٍ.",
		NoTransactions:      "لا توجد معاملات.",
		SelectLanguage:      "اختر اللغة:",
	},
}
