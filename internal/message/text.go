package message

// Fixed user-facing strings. Menu and error texts are Arabic, product texts
// English, matching the shop's audience.
const (
	TextWelcome          = "مرحباً! أهلاً وسهلاً بك في أقمشة النوام. اختر فئة الأقمشة التي تريدها:"
	TextHelp             = "مرحباً! يمكنني مساعدتك في تصفح فئات الأقمشة. فقط اضغط على 'تصفح الفئات' للبدء!"
	TextNoCategories     = "عذراً، لا توجد فئات متاحة حالياً. يرجى المحاولة لاحقاً."
	TextApology          = "عذراً، حدث خطأ أثناء معالجة طلبك. يرجى المحاولة مرة أخرى."
	TextMenuHeaderFirst  = "مرحباً! أهلاً وسهلاً بك في أقمشة النوام. اختر فئة الأقمشة:"
	TextMenuHeaderMore   = "المزيد من الفئات المتاحة:"
	TextChooseSub        = "اختر فئة فرعية:"
	TitleBrowse          = "تصفح الفئات"
	TitleHelp            = "المساعدة"
	TitleBackToMain      = "← القائمة الرئيسية"
	TitleBackToCats      = "← العودة للفئات"
	TitleMoreCategories  = "المزيد من الفئات (%d/%d) →"
	TitleMoreSubs        = "المزيد من الفئات الفرعية (%d/%d) →"
	TextCategoryMissing  = "Category not found. Please try again."
	TextNoParentCategory = "Error: Could not find parent category."
	TextNoProductsInCat  = "No products found in this category."
	TextNoProductsInSub  = "No products found in this subcategory."
	TextProductsFailed   = "Sorry, there was an error loading products. Please try again later."
	TextThanks           = "Thanks!"
	TextTryAnotherImage  = "Oops, try sending another image."
	TextViewProductsStub = "Viewing products for: %s\n\nThis feature will be implemented soon! For now, you can browse our categories."
	SubtitlePricePerM    = "Price per meter: %s"
	PriceUnknown         = "N/A"
)

// DefaultProductImage is used for products without an image attachment.
const DefaultProductImage = "https://lh3.googleusercontent.com/aida-public/AB6AXuAgEn5bBp8A3v5TMgmG_Xy30ZssTkQ8uJQAkn9gjKJvFTKqVKFHIOVfsEWTffLVupooswoJqnDc2pwIS3RFtU8Y2nx3tuFu2A6cdTRVdJ-0zdiZBOmRiFOvmKQGlFK8ViKl_t7BjzhTIi-k9S3DqfghfDdi6L_x8J5uT-4nKcla4hFpaPprg2XU4LthpdL30Fbu88v8p-bqOjfnmxRs-Jhvu-JZQsTMUBEb-j5TB5P-GDg1712IqY5Fe-4yfiTk5UreQ_nUBDL02pY"
